package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// ReadinessDetail carries extra subsystem state into the health payload,
// keyed by section name. The marker server reports its compiled-in catalog
// size here so a probe can tell a half-started process from a ready one.
type ReadinessDetail map[string]interface{}

// PoolStats represents database connection pool statistics.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
	Healthy       bool  `json:"healthy"`
}

// GetPoolStats returns connection pool statistics.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
		Healthy:       stat.TotalConns() > 0,
	}
}

// healthPayload assembles the health response from the ping result, pool
// statistics, and any readiness details registered at mount time.
func healthPayload(stats *PoolStats, pingErr error, details ReadinessDetail) (int, map[string]interface{}) {
	body := map[string]interface{}{
		"status": "healthy",
		"pool":   stats,
	}
	for section, detail := range details {
		body[section] = detail
	}
	if pingErr != nil {
		stats.Healthy = false
		body["status"] = "unhealthy"
		body["error"] = pingErr.Error()
		return http.StatusServiceUnavailable, body
	}
	return http.StatusOK, body
}

// HealthHandler returns a handler for the database health check endpoint.
func HealthHandler(pool *pgxpool.Pool, details ReadinessDetail) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		pingErr := pool.Ping(ctx)
		code, body := healthPayload(GetPoolStats(pool), pingErr, details)
		return c.JSON(code, body)
	}
}
