package markers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ehr/bodymarkers/internal/platform/auth"
	"github.com/ehr/bodymarkers/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all marker routes on api. Middleware in catalogMW is
// applied to the catalog routes only; patient and instance routes never get
// it because their responses carry patient data.
func (h *Handler) RegisterRoutes(api *echo.Group, catalogMW ...echo.MiddlewareFunc) {
	role := auth.RequireRole("admin", "physician", "nurse")

	catalog := api.Group("", append([]echo.MiddlewareFunc{role}, catalogMW...)...)
	catalog.GET("/marker-types", h.ListMarkerTypes)
	catalog.GET("/marker-types/:type", h.GetMarkerType)
	catalog.POST("/marker-types/resolve", h.ResolveText)

	patient := api.Group("", role)
	patient.POST("/patients/:id/markers/propose", h.ProposeMarker)
	patient.POST("/patients/:id/markers", h.CreateMarker)
	patient.GET("/patients/:id/markers", h.ListMarkers)
	patient.GET("/patients/:id/markers/summary", h.MarkerSummary)
	patient.GET("/patients/:id/markers/diagram", h.BodyDiagram)

	instance := api.Group("", role)
	instance.GET("/markers/:id", h.GetMarker)
	instance.POST("/markers/:id/confirm", h.ConfirmMarker)
	instance.POST("/markers/:id/reject", h.RejectMarker)
	instance.POST("/markers/:id/attention", h.SetAttention)
	instance.DELETE("/markers/:id", h.DeactivateMarker)
}

func (h *Handler) ListMarkerTypes(c echo.Context) error {
	reg := h.svc.Registry()
	if f := c.QueryParam("family"); f != "" {
		return c.JSON(http.StatusOK, reg.Family(Family(f)))
	}
	if c.QueryParam("badges") == "true" {
		return c.JSON(http.StatusOK, reg.StatusBadgeTypes())
	}
	return c.JSON(http.StatusOK, reg.All())
}

func (h *Handler) GetMarkerType(c echo.Context) error {
	def, ok := h.svc.Registry().Get(c.Param("type"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "marker type not found")
	}
	return c.JSON(http.StatusOK, def)
}

type resolveRequest struct {
	Text string `json:"text"`
}

type resolveResponse struct {
	Matched    bool                  `json:"matched"`
	MarkerType *MarkerTypeDefinition `json:"marker_type,omitempty"`
	Laterality Laterality            `json:"laterality,omitempty"`
}

func (h *Handler) ResolveText(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	def := h.svc.ResolveText(req.Text)
	if def == nil {
		return c.JSON(http.StatusOK, resolveResponse{Matched: false})
	}
	resp := resolveResponse{Matched: true, MarkerType: def}
	if def.Laterality != nil {
		resp.Laterality = DetectLaterality(req.Text)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ProposeMarker(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	inst, err := h.svc.ProposeFromText(c.Request().Context(), patientID, req.Text, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if inst == nil {
		return c.JSON(http.StatusOK, resolveResponse{Matched: false})
	}
	return c.JSON(http.StatusCreated, inst)
}

func (h *Handler) CreateMarker(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var inst MarkerInstance
	if err := c.Bind(&inst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inst.PatientID = patientID
	inst.CreatedBy = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.CreateMarker(c.Request().Context(), &inst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inst)
}

func (h *Handler) ListMarkers(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListMarkers(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) MarkerSummary(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	excludeBadges := c.QueryParam("exclude_badges") == "true"
	items, err := h.svc.MarkerSummary(c.Request().Context(), patientID, limit, excludeBadges)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BodyDiagram(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	diagram, err := h.svc.BodyDiagram(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, diagram)
}

func (h *Handler) GetMarker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	inst, err := h.svc.GetMarker(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "marker not found")
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *Handler) ConfirmMarker(c echo.Context) error {
	return h.handleTransition(c, h.svc.ConfirmMarker)
}

func (h *Handler) RejectMarker(c echo.Context) error {
	return h.handleTransition(c, h.svc.RejectMarker)
}

func (h *Handler) handleTransition(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*MarkerInstance, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	inst, err := fn(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return c.JSON(http.StatusOK, inst)
}

type attentionRequest struct {
	RequiresAttention bool `json:"requires_attention"`
}

func (h *Handler) SetAttention(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req attentionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inst, err := h.svc.SetAttention(c.Request().Context(), id, req.RequiresAttention)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "marker not found")
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *Handler) DeactivateMarker(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeactivateMarker(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "marker not found")
	}
	return c.NoContent(http.StatusNoContent)
}
