package markers

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

// =========== Mock Repository ===========

type mockInstanceRepo struct {
	store map[uuid.UUID]*MarkerInstance
	seq   int
}

func newMockInstanceRepo() *mockInstanceRepo {
	return &mockInstanceRepo{store: make(map[uuid.UUID]*MarkerInstance)}
}

func (m *mockInstanceRepo) Create(_ context.Context, inst *MarkerInstance) error {
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	m.seq++
	if inst.CreatedAt.IsZero() {
		inst.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	}
	inst.UpdatedAt = inst.CreatedAt
	cp := *inst
	m.store[inst.ID] = &cp
	return nil
}

func (m *mockInstanceRepo) GetByID(_ context.Context, id uuid.UUID) (*MarkerInstance, error) {
	inst, ok := m.store[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	cp := *inst
	return &cp, nil
}

func (m *mockInstanceRepo) Update(_ context.Context, inst *MarkerInstance) error {
	if _, ok := m.store[inst.ID]; !ok {
		return fmt.Errorf("not found")
	}
	cp := *inst
	cp.UpdatedAt = time.Now()
	m.store[inst.ID] = &cp
	return nil
}

func (m *mockInstanceRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*MarkerInstance, int, error) {
	all := m.byPatient(patientID)
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockInstanceRepo) ListActiveByPatient(_ context.Context, patientID uuid.UUID) ([]*MarkerInstance, error) {
	var out []*MarkerInstance
	for _, inst := range m.byPatient(patientID) {
		if inst.IsActive && inst.Status != StatusRejected {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockInstanceRepo) byPatient(patientID uuid.UUID) []*MarkerInstance {
	var out []*MarkerInstance
	for _, inst := range m.store {
		if inst.PatientID == patientID {
			cp := *inst
			out = append(out, &cp)
		}
	}
	return out
}

func newTestService(t *testing.T) (*Service, *mockInstanceRepo) {
	t.Helper()
	repo := newMockInstanceRepo()
	svc := NewService(mustRegistry(t), repo)
	return svc, repo
}

// =========== Proposal ===========

func TestProposeFromText_Match(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	inst, err := svc.ProposeFromText(context.Background(), patientID, "PICC line in the right arm", "nurse-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst == nil {
		t.Fatal("expected a proposed instance")
	}
	if inst.MarkerType != "picc_line" {
		t.Errorf("expected picc_line, got %s", inst.MarkerType)
	}
	if inst.Status != StatusPendingConfirmation {
		t.Errorf("expected pending_confirmation, got %s", inst.Status)
	}
	if inst.Laterality != LateralityRight {
		t.Errorf("expected right laterality, got %q", inst.Laterality)
	}
	if !inst.IsActive {
		t.Error("proposed instance should be active")
	}
	if inst.SourceText != "PICC line in the right arm" {
		t.Errorf("source text not preserved: %q", inst.SourceText)
	}
	if inst.CreatedBy != "nurse-7" {
		t.Errorf("expected created_by nurse-7, got %q", inst.CreatedBy)
	}
	if inst.Category != CategoryModerate {
		t.Errorf("category should be denormalized from the type, got %s", inst.Category)
	}
}

func TestProposeFromText_NoMatch(t *testing.T) {
	svc, repo := newTestService(t)

	inst, err := svc.ProposeFromText(context.Background(), uuid.New(), "patient resting comfortably", "nurse-7")
	if err != nil {
		t.Fatalf("no match should not be an error, got %v", err)
	}
	if inst != nil {
		t.Errorf("expected nil instance, got %s", inst.MarkerType)
	}
	if len(repo.store) != 0 {
		t.Error("no match must not persist anything")
	}
}

func TestProposeFromText_MidlineIgnoresLateralityWords(t *testing.T) {
	svc, _ := newTestService(t)

	// Tracheostomy is midline; a "right" in the narrative must not
	// produce a lateralized instance.
	inst, err := svc.ProposeFromText(context.Background(), uuid.New(), "trach tube, suctioned right before rounds", "rn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst == nil {
		t.Fatal("expected a match")
	}
	if inst.MarkerType != "tracheostomy" {
		t.Fatalf("expected tracheostomy, got %s", inst.MarkerType)
	}
	if inst.Laterality != LateralityNone {
		t.Errorf("midline type must not carry laterality, got %q", inst.Laterality)
	}
}

// =========== Direct placement ===========

func TestCreateMarker(t *testing.T) {
	svc, _ := newTestService(t)

	inst := &MarkerInstance{
		PatientID:  uuid.New(),
		MarkerType: "central_line",
		Laterality: LateralityLeft,
	}
	if err := svc.CreateMarker(context.Background(), inst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Status != StatusConfirmed {
		t.Errorf("direct placement should be confirmed, got %s", inst.Status)
	}
	if inst.Category != CategoryModerate {
		t.Errorf("category should default from the definition, got %s", inst.Category)
	}
	if inst.ID == uuid.Nil {
		t.Error("expected an assigned ID")
	}
}

func TestCreateMarker_UnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	inst := &MarkerInstance{PatientID: uuid.New(), MarkerType: "hovercraft"}
	if err := svc.CreateMarker(context.Background(), inst); err == nil {
		t.Error("expected error for unknown marker type")
	}
}

func TestCreateMarker_MidlineDropsLaterality(t *testing.T) {
	svc, _ := newTestService(t)

	inst := &MarkerInstance{
		PatientID:  uuid.New(),
		MarkerType: "foley_catheter",
		Laterality: LateralityLeft,
	}
	if err := svc.CreateMarker(context.Background(), inst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Laterality != LateralityNone {
		t.Errorf("midline type must drop laterality, got %q", inst.Laterality)
	}
}

// =========== Lifecycle ===========

func TestConfirmAndRejectLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	proposed, err := svc.ProposeFromText(context.Background(), patientID, "foley in place", "rn")
	if err != nil || proposed == nil {
		t.Fatalf("propose failed: %v", err)
	}

	confirmed, err := svc.ConfirmMarker(context.Background(), proposed.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("expected confirmed, got %s", confirmed.Status)
	}

	// Confirming twice is a conflict: only pending instances transition.
	if _, err := svc.ConfirmMarker(context.Background(), proposed.ID); err == nil {
		t.Error("expected error confirming a confirmed instance")
	}
	if _, err := svc.RejectMarker(context.Background(), proposed.ID); err == nil {
		t.Error("expected error rejecting a confirmed instance")
	}
}

func TestRejectIsTerminal(t *testing.T) {
	svc, repo := newTestService(t)
	patientID := uuid.New()

	proposed, err := svc.ProposeFromText(context.Background(), patientID, "dnr order on chart", "md")
	if err != nil || proposed == nil {
		t.Fatalf("propose failed: %v", err)
	}

	rejected, err := svc.RejectMarker(context.Background(), proposed.ID)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Errorf("expected rejected, got %s", rejected.Status)
	}

	if _, err := svc.ConfirmMarker(context.Background(), proposed.ID); err == nil {
		t.Error("rejected instances must never transition again")
	}

	// Rejected instances stay in the record but leave the active snapshot.
	active, err := repo.ListActiveByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("rejected instance should not be active, got %d", len(active))
	}
	if _, err := svc.GetMarker(context.Background(), proposed.ID); err != nil {
		t.Errorf("rejected instance should still be retrievable: %v", err)
	}
}

func TestDeactivateMarker(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	inst := &MarkerInstance{PatientID: patientID, MarkerType: "picc_line"}
	if err := svc.CreateMarker(context.Background(), inst); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeactivateMarker(context.Background(), inst.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	got, err := svc.GetMarker(context.Background(), inst.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.IsActive {
		t.Error("expected instance to be inactive")
	}

	summary, err := svc.MarkerSummary(context.Background(), patientID, 5, false)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("deactivated instance must not appear in summary, got %d", len(summary))
	}
}

func TestSetAttention(t *testing.T) {
	svc, _ := newTestService(t)

	inst := &MarkerInstance{PatientID: uuid.New(), MarkerType: "picc_line"}
	if err := svc.CreateMarker(context.Background(), inst); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	flagged, err := svc.SetAttention(context.Background(), inst.ID, true)
	if err != nil {
		t.Fatalf("set attention failed: %v", err)
	}
	if !flagged.RequiresAttention {
		t.Error("expected requires_attention true")
	}

	cleared, err := svc.SetAttention(context.Background(), inst.ID, false)
	if err != nil {
		t.Fatalf("clear attention failed: %v", err)
	}
	if cleared.RequiresAttention {
		t.Error("expected requires_attention false")
	}
}

// =========== Summary & Diagram ===========

func TestMarkerSummary_TopN(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	for _, mt := range []string{"picc_line", "foley_catheter", "dnr", "fall_risk", "telemetry", "diabetes"} {
		inst := &MarkerInstance{PatientID: patientID, MarkerType: mt}
		if err := svc.CreateMarker(context.Background(), inst); err != nil {
			t.Fatalf("create %s failed: %v", mt, err)
		}
	}

	top3, err := svc.MarkerSummary(context.Background(), patientID, 3, false)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(top3) != 3 {
		t.Fatalf("expected 3 results, got %d", len(top3))
	}
	if top3[0].MarkerType != "dnr" {
		t.Errorf("expected dnr first, got %s", top3[0].MarkerType)
	}

	// Zero limit falls back to the default of 5.
	def, err := svc.MarkerSummary(context.Background(), patientID, 0, false)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(def) != 5 {
		t.Errorf("expected default limit 5, got %d", len(def))
	}
}

func TestMarkerSummary_ExcludeBadges(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	for _, mt := range []string{"picc_line", "dnr", "contact_isolation"} {
		inst := &MarkerInstance{PatientID: patientID, MarkerType: mt}
		if err := svc.CreateMarker(context.Background(), inst); err != nil {
			t.Fatalf("create %s failed: %v", mt, err)
		}
	}

	out, err := svc.MarkerSummary(context.Background(), patientID, 5, true)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(out) != 1 || out[0].MarkerType != "picc_line" {
		t.Errorf("expected only picc_line with badges excluded, got %v", summaryTypes(out))
	}
}

func summaryTypes(instances []*MarkerInstance) []string {
	out := make([]string, len(instances))
	for i, inst := range instances {
		out[i] = inst.MarkerType
	}
	return out
}

func TestBodyDiagram(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	picc := &MarkerInstance{PatientID: patientID, MarkerType: "picc_line", Laterality: LateralityLeft}
	if err := svc.CreateMarker(context.Background(), picc); err != nil {
		t.Fatalf("create picc failed: %v", err)
	}
	dnr := &MarkerInstance{PatientID: patientID, MarkerType: "dnr"}
	if err := svc.CreateMarker(context.Background(), dnr); err != nil {
		t.Fatalf("create dnr failed: %v", err)
	}

	diagram, err := svc.BodyDiagram(context.Background(), patientID)
	if err != nil {
		t.Fatalf("diagram failed: %v", err)
	}

	if len(diagram.Markers) != 1 {
		t.Fatalf("expected 1 anatomical marker, got %d", len(diagram.Markers))
	}
	placed := diagram.Markers[0]
	if placed.Instance.MarkerType != "picc_line" {
		t.Errorf("expected picc_line, got %s", placed.Instance.MarkerType)
	}
	if placed.Position != (Position{X: 78, Y: 35}) {
		t.Errorf("left picc should sit at {78 35}, got %+v", placed.Position)
	}
	if placed.BodyRegion != "upper_arm" || placed.BodyView != ViewFront {
		t.Errorf("unexpected region/view: %s/%s", placed.BodyRegion, placed.BodyView)
	}

	if len(diagram.Badges) != 1 {
		t.Fatalf("expected 1 badge, got %d", len(diagram.Badges))
	}
	badge := diagram.Badges[0]
	if badge.Instance.MarkerType != "dnr" {
		t.Errorf("expected dnr badge, got %s", badge.Instance.MarkerType)
	}
	if badge.Color == "" || badge.Icon == "" {
		t.Error("badge should carry rendering hints")
	}
}

func TestBodyDiagram_SkipsStaleTypes(t *testing.T) {
	svc, repo := newTestService(t)
	patientID := uuid.New()

	// Simulate a row persisted under a type the catalog no longer knows.
	stale := &MarkerInstance{
		ID:         uuid.New(),
		PatientID:  patientID,
		MarkerType: "retired_type",
		Status:     StatusConfirmed,
		IsActive:   true,
	}
	if err := repo.Create(context.Background(), stale); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	diagram, err := svc.BodyDiagram(context.Background(), patientID)
	if err != nil {
		t.Fatalf("diagram failed: %v", err)
	}
	if len(diagram.Markers) != 0 || len(diagram.Badges) != 0 {
		t.Error("stale types should be skipped, not rendered")
	}
}

func TestListMarkers_Pagination(t *testing.T) {
	svc, _ := newTestService(t)
	patientID := uuid.New()

	for i := 0; i < 7; i++ {
		inst := &MarkerInstance{PatientID: patientID, MarkerType: "peripheral_iv"}
		if err := svc.CreateMarker(context.Background(), inst); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, total, err := svc.ListMarkers(context.Background(), patientID, 3, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if len(page) != 3 {
		t.Errorf("expected page of 3, got %d", len(page))
	}

	last, _, err := svc.ListMarkers(context.Background(), patientID, 3, 6)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(last) != 1 {
		t.Errorf("expected final page of 1, got %d", len(last))
	}
}
