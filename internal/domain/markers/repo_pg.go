package markers

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type markerInstanceRepoPG struct{ pool *pgxpool.Pool }

func NewMarkerInstanceRepoPG(pool *pgxpool.Pool) MarkerInstanceRepository {
	return &markerInstanceRepoPG{pool: pool}
}

func (r *markerInstanceRepoPG) conn(ctx context.Context) queryable {
	return r.pool
}

const miCols = `id, patient_id, marker_type, category, laterality, status,
	is_active, requires_attention, complications_watch, note,
	source_text, created_by, created_at, updated_at`

func (r *markerInstanceRepoPG) scanRow(row pgx.Row) (*MarkerInstance, error) {
	var m MarkerInstance
	err := row.Scan(&m.ID, &m.PatientID, &m.MarkerType, &m.Category, &m.Laterality, &m.Status,
		&m.IsActive, &m.RequiresAttention, &m.Details.ComplicationsWatch, &m.Details.Note,
		&m.SourceText, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *markerInstanceRepoPG) Create(ctx context.Context, m *MarkerInstance) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO marker_instances (id, patient_id, marker_type, category, laterality, status,
			is_active, requires_attention, complications_watch, note, source_text, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		m.ID, m.PatientID, m.MarkerType, m.Category, m.Laterality, m.Status,
		m.IsActive, m.RequiresAttention, m.Details.ComplicationsWatch, m.Details.Note,
		m.SourceText, m.CreatedBy)
	return err
}

func (r *markerInstanceRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MarkerInstance, error) {
	return r.scanRow(r.conn(ctx).QueryRow(ctx, `SELECT `+miCols+` FROM marker_instances WHERE id = $1`, id))
}

func (r *markerInstanceRepoPG) Update(ctx context.Context, m *MarkerInstance) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE marker_instances SET category=$2, laterality=$3, status=$4, is_active=$5,
			requires_attention=$6, complications_watch=$7, note=$8, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Category, m.Laterality, m.Status, m.IsActive,
		m.RequiresAttention, m.Details.ComplicationsWatch, m.Details.Note)
	return err
}

func (r *markerInstanceRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MarkerInstance, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM marker_instances WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+miCols+` FROM marker_instances WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*MarkerInstance
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *markerInstanceRepoPG) ListActiveByPatient(ctx context.Context, patientID uuid.UUID) ([]*MarkerInstance, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+miCols+` FROM marker_instances
		 WHERE patient_id = $1 AND is_active AND status != 'rejected'
		 ORDER BY created_at ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MarkerInstance
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
