package markers

import (
	"context"

	"github.com/google/uuid"
)

// MarkerInstanceRepository owns persistence of marker instances. The
// engine itself never touches storage; the service layer goes through
// this seam so tests can swap in an in-memory implementation.
type MarkerInstanceRepository interface {
	Create(ctx context.Context, m *MarkerInstance) error
	GetByID(ctx context.Context, id uuid.UUID) (*MarkerInstance, error)
	Update(ctx context.Context, m *MarkerInstance) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MarkerInstance, int, error)
	// ListActiveByPatient returns the full active snapshot used for
	// ranking and diagram assembly, oldest first.
	ListActiveByPatient(ctx context.Context, patientID uuid.UUID) ([]*MarkerInstance, error)
}
