package markers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates the marker engine over the persisted instance
// store: text-to-marker proposal, lifecycle transitions, top-N
// summaries, and body-diagram assembly.
type Service struct {
	registry *Registry
	repo     MarkerInstanceRepository

	// now is swappable in tests; ranking is deterministic per timestamp.
	now func() time.Time
}

// NewService creates a marker service over a registry and instance store.
func NewService(registry *Registry, repo MarkerInstanceRepository) *Service {
	return &Service{registry: registry, repo: repo, now: time.Now}
}

// Registry exposes the immutable catalog to handlers.
func (s *Service) Registry() *Registry {
	return s.registry
}

// ResolveText classifies a free-text span against the catalog without
// creating anything. A nil result is the normal no-match outcome.
func (s *Service) ResolveText(text string) *MarkerTypeDefinition {
	return s.registry.Resolve(text)
}

// ProposeFromText resolves a narrative span and, on a match, records a
// pending_confirmation instance with laterality sniffed from the text.
// No match returns (nil, nil): frequent, not an error.
func (s *Service) ProposeFromText(ctx context.Context, patientID uuid.UUID, text, proposedBy string) (*MarkerInstance, error) {
	def := s.registry.Resolve(text)
	if def == nil {
		return nil, nil
	}

	laterality := LateralityNone
	if def.Laterality != nil {
		laterality = DetectLaterality(text)
	}

	inst := &MarkerInstance{
		PatientID:  patientID,
		MarkerType: def.Type,
		Category:   def.Category,
		Laterality: laterality,
		Status:     StatusPendingConfirmation,
		IsActive:   true,
		SourceText: text,
		CreatedBy:  proposedBy,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		return nil, fmt.Errorf("create proposed marker: %w", err)
	}
	return inst, nil
}

// CreateMarker records a directly placed instance, created confirmed.
func (s *Service) CreateMarker(ctx context.Context, inst *MarkerInstance) error {
	def, ok := s.registry.Get(inst.MarkerType)
	if !ok {
		return fmt.Errorf("unknown marker type %q", inst.MarkerType)
	}
	if inst.Category == "" {
		inst.Category = def.Category
	}
	if def.Laterality == nil {
		inst.Laterality = LateralityNone
	}
	inst.Status = StatusConfirmed
	inst.IsActive = true
	return s.repo.Create(ctx, inst)
}

// GetMarker fetches one instance by ID.
func (s *Service) GetMarker(ctx context.Context, id uuid.UUID) (*MarkerInstance, error) {
	return s.repo.GetByID(ctx, id)
}

// ListMarkers returns a page of a patient's instances, newest first.
func (s *Service) ListMarkers(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MarkerInstance, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// ConfirmMarker transitions a pending instance to confirmed.
func (s *Service) ConfirmMarker(ctx context.Context, id uuid.UUID) (*MarkerInstance, error) {
	return s.transition(ctx, id, StatusConfirmed)
}

// RejectMarker transitions a pending instance to rejected. Rejection is
// terminal: the instance is permanently excluded from ranking.
func (s *Service) RejectMarker(ctx context.Context, id uuid.UUID) (*MarkerInstance, error) {
	return s.transition(ctx, id, StatusRejected)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to InstanceStatus) (*MarkerInstance, error) {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst.Status != StatusPendingConfirmation {
		return nil, fmt.Errorf("marker %s is %s; only pending_confirmation markers can transition", id, inst.Status)
	}
	inst.Status = to
	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// DeactivateMarker marks an instance resolved/removed. It stays in the
// record but is excluded from ranking and rendering.
func (s *Service) DeactivateMarker(ctx context.Context, id uuid.UUID) error {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inst.IsActive = false
	return s.repo.Update(ctx, inst)
}

// SetAttention flips the requires_attention flag on behalf of downstream
// clinical logic.
func (s *Service) SetAttention(ctx context.Context, id uuid.UUID, attention bool) (*MarkerInstance, error) {
	inst, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inst.RequiresAttention = attention
	if err := s.repo.Update(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// MarkerSummary returns the patient's top-N instances by priority for
// compact display contexts.
func (s *Service) MarkerSummary(ctx context.Context, patientID uuid.UUID, limit int, excludeStatusBadges bool) ([]*MarkerInstance, error) {
	if limit <= 0 {
		limit = 5
	}
	snapshot, err := s.repo.ListActiveByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.registry.Rank(snapshot, limit, excludeStatusBadges, s.now()), nil
}

// BodyDiagram assembles the render payload for a patient: anatomical
// markers with resolved positions plus off-body status badges.
func (s *Service) BodyDiagram(ctx context.Context, patientID uuid.UUID) (*BodyDiagram, error) {
	snapshot, err := s.repo.ListActiveByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	diagram := &BodyDiagram{}
	for _, inst := range snapshot {
		def, ok := s.registry.Get(inst.MarkerType)
		if !ok {
			// The record store validates types before persisting; an
			// unknown type here is stale data and is skipped, not fatal.
			continue
		}
		if def.IsStatusBadge {
			diagram.Badges = append(diagram.Badges, StatusBadge{
				Instance:    inst,
				DisplayName: def.DisplayName,
				Color:       def.BadgeColor,
				Icon:        def.BadgeIcon,
			})
			continue
		}
		diagram.Markers = append(diagram.Markers, PlacedMarker{
			Instance:    inst,
			DisplayName: def.DisplayName,
			BodyRegion:  def.DefaultBodyRegion,
			BodyView:    def.DefaultBodyView,
			Position:    ResolvePosition(def, inst.Laterality),
		})
	}
	return diagram, nil
}
