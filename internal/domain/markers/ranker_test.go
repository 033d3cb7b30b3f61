package markers

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var rankNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// oldInstance builds a confirmed, active instance created long enough ago
// that no recency bonus applies.
func oldInstance(markerType string, category Category) *MarkerInstance {
	return &MarkerInstance{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		MarkerType: markerType,
		Category:   category,
		Status:     StatusConfirmed,
		IsActive:   true,
		CreatedAt:  rankNow.Add(-72 * time.Hour),
	}
}

// =========== Score ===========

func TestScore_CategoryWeights(t *testing.T) {
	r := mustRegistry(t)

	tests := []struct {
		category Category
		want     int
	}{
		{CategoryCritical, 100},
		{CategoryNeurological, 80},
		{CategoryMonitoring, 60},
		{CategoryChronic, 50},
		{CategoryModerate, 40},
		{CategoryInformational, 20},
		{Category("unlisted"), 30},
	}
	for _, tt := range tests {
		inst := oldInstance("some_unknown_type", tt.category)
		if got := r.Score(inst, rankNow); got != tt.want {
			t.Errorf("category %q: score = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestScore_OverrideFloorOnlyRaises(t *testing.T) {
	r := mustRegistry(t)

	// dnr: critical (100) raised to the 150 floor.
	dnr := oldInstance("dnr", CategoryCritical)
	if got := r.Score(dnr, rankNow); got != 150 {
		t.Errorf("dnr score = %d, want 150", got)
	}

	// vein_preservation has a floor of 40 equal to the moderate weight;
	// the floor must never pull a higher category weight down.
	vp := oldInstance("vein_preservation", CategoryCritical)
	if got := r.Score(vp, rankNow); got != 100 {
		t.Errorf("vein_preservation with critical category = %d, want 100", got)
	}

	// No override: pure category weight.
	picc := oldInstance("picc_line", CategoryModerate)
	if got := r.Score(picc, rankNow); got != 40 {
		t.Errorf("picc_line score = %d, want 40", got)
	}
}

func TestScore_Bonuses(t *testing.T) {
	r := mustRegistry(t)

	base := oldInstance("picc_line", CategoryModerate) // base 40

	attention := oldInstance("picc_line", CategoryModerate)
	attention.RequiresAttention = true
	if got := r.Score(attention, rankNow); got != r.Score(base, rankNow)+50 {
		t.Errorf("attention bonus: got %d, want %d", got, r.Score(base, rankNow)+50)
	}

	pending := oldInstance("picc_line", CategoryModerate)
	pending.Status = StatusPendingConfirmation
	if got := r.Score(pending, rankNow); got != 40+25 {
		t.Errorf("pending bonus: got %d, want 65", got)
	}

	watch := oldInstance("picc_line", CategoryModerate)
	watch.Details.ComplicationsWatch = []string{"infection"}
	if got := r.Score(watch, rankNow); got != 40+20 {
		t.Errorf("complications watch bonus: got %d, want 60", got)
	}
}

func TestScore_RecencyTiers(t *testing.T) {
	r := mustRegistry(t)

	tests := []struct {
		name string
		age  time.Duration
		want int // base 40 + recency
	}{
		{"2h old", 2 * time.Hour, 65},
		{"exactly 12h", 12 * time.Hour, 65},
		{"18h old", 18 * time.Hour, 55},
		{"exactly 24h", 24 * time.Hour, 55},
		{"30h old", 30 * time.Hour, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := oldInstance("picc_line", CategoryModerate)
			inst.CreatedAt = rankNow.Add(-tt.age)
			if got := r.Score(inst, rankNow); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_BonusesStack(t *testing.T) {
	r := mustRegistry(t)

	inst := oldInstance("dnr", CategoryCritical)
	inst.Status = StatusPendingConfirmation
	inst.RequiresAttention = true
	inst.CreatedAt = rankNow.Add(-1 * time.Hour)
	inst.Details.ComplicationsWatch = []string{"review order"}

	// 150 floor + 50 attention + 25 pending + 25 recent + 20 watch
	if got := r.Score(inst, rankNow); got != 270 {
		t.Errorf("stacked score = %d, want 270", got)
	}
}

// =========== Rank ===========

func TestRank_CodeStatusOutranksDevices(t *testing.T) {
	r := mustRegistry(t)

	picc := oldInstance("picc_line", CategoryModerate)
	dnr := oldInstance("dnr", CategoryCritical)

	top := r.Rank([]*MarkerInstance{picc, dnr}, 1, false, rankNow)
	if len(top) != 1 {
		t.Fatalf("expected 1 result, got %d", len(top))
	}
	if top[0].MarkerType != "dnr" {
		t.Errorf("expected dnr on top, got %s", top[0].MarkerType)
	}
}

func TestRank_FiltersInactiveAndRejected(t *testing.T) {
	r := mustRegistry(t)

	active := oldInstance("picc_line", CategoryModerate)
	inactive := oldInstance("central_line", CategoryModerate)
	inactive.IsActive = false
	rejected := oldInstance("chest_tube", CategoryModerate)
	rejected.Status = StatusRejected

	out := r.Rank([]*MarkerInstance{inactive, rejected, active}, 10, false, rankNow)
	if len(out) != 1 {
		t.Fatalf("expected 1 eligible instance, got %d", len(out))
	}
	if out[0] != active {
		t.Error("expected only the active confirmed instance to survive")
	}
}

func TestRank_ExcludeStatusBadges(t *testing.T) {
	r := mustRegistry(t)

	picc := oldInstance("picc_line", CategoryModerate)
	dnr := oldInstance("dnr", CategoryCritical)
	fall := oldInstance("fall_risk", CategoryCritical)

	all := r.Rank([]*MarkerInstance{picc, dnr, fall}, 10, false, rankNow)
	if len(all) != 3 {
		t.Fatalf("expected 3 with badges included, got %d", len(all))
	}

	anatomical := r.Rank([]*MarkerInstance{picc, dnr, fall}, 10, true, rankNow)
	if len(anatomical) != 1 {
		t.Fatalf("expected 1 with badges excluded, got %d", len(anatomical))
	}
	if anatomical[0].MarkerType != "picc_line" {
		t.Errorf("expected picc_line, got %s", anatomical[0].MarkerType)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	r := mustRegistry(t)

	// Identical scores: same type, category, age.
	first := oldInstance("picc_line", CategoryModerate)
	second := oldInstance("picc_line", CategoryModerate)
	third := oldInstance("picc_line", CategoryModerate)

	out := r.Rank([]*MarkerInstance{first, second, third}, 3, false, rankNow)
	if out[0] != first || out[1] != second || out[2] != third {
		t.Error("tied instances should keep their input order")
	}
}

func TestRank_AttentionPromotes(t *testing.T) {
	r := mustRegistry(t)

	// Identical except for the attention flag.
	plain := oldInstance("picc_line", CategoryModerate)
	flagged := oldInstance("picc_line", CategoryModerate)
	flagged.RequiresAttention = true

	out := r.Rank([]*MarkerInstance{plain, flagged}, 2, false, rankNow)
	if out[0] != flagged {
		t.Error("requires_attention instance should rank above an otherwise identical one")
	}
}

func TestRank_LimitBounds(t *testing.T) {
	r := mustRegistry(t)

	instances := []*MarkerInstance{
		oldInstance("picc_line", CategoryModerate),
		oldInstance("foley_catheter", CategoryInformational),
	}

	if out := r.Rank(instances, 10, false, rankNow); len(out) != 2 {
		t.Errorf("limit beyond population: expected 2, got %d", len(out))
	}
	if out := r.Rank(instances, 0, false, rankNow); out != nil {
		t.Errorf("limit 0: expected nil, got %d items", len(out))
	}
	if out := r.Rank(nil, 5, false, rankNow); len(out) != 0 {
		t.Errorf("empty input: expected 0, got %d", len(out))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	r := mustRegistry(t)

	low := oldInstance("foley_catheter", CategoryInformational)
	high := oldInstance("dnr", CategoryCritical)
	input := []*MarkerInstance{low, high}

	r.Rank(input, 2, false, rankNow)

	if input[0] != low || input[1] != high {
		t.Error("Rank must not reorder the caller's slice")
	}
}
