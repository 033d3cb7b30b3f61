package markers

import (
	"sort"
	"time"
)

// categoryWeights are the base priority scores per category.
var categoryWeights = map[Category]int{
	CategoryCritical:      100,
	CategoryNeurological:  80,
	CategoryMonitoring:    60,
	CategoryChronic:       50,
	CategoryModerate:      40,
	CategoryInformational: 20,
}

// defaultCategoryWeight applies when an instance carries a category the
// table does not know.
const defaultCategoryWeight = 30

// priorityOverrides are per-type score floors encoding clinical triage
// judgment that the category taxonomy alone cannot express: a DNR order
// must outrank an informational implant even when categories tie. The
// floor only raises a score, never lowers it. This is reference data;
// changes here are clinical policy changes and belong in review, not in
// scoring logic.
var priorityOverrides = map[string]int{
	// life-status codes
	"dnr":          150,
	"dni":          150,
	"comfort_care": 150,
	"full_code":    150,

	// isolation statuses
	"airborne_isolation":      130,
	"neutropenic_precautions": 125,
	"droplet_isolation":       120,
	"contact_isolation":       115,

	// allergy and access alerts
	"allergy_alert":     125,
	"latex_allergy":     125,
	"no_blood_products": 122,
	"limb_alert":        120,

	// critical precautions
	"suicide_precautions":    120,
	"seizure_precautions":    115,
	"fall_risk":              110,
	"aspiration_precautions": 110,
	"bleeding_precautions":   105,
	"elopement_risk":         100,

	// critical devices
	"endotracheal_tube": 110,
	"tracheostomy":      110,
	"chest_tube":        110,
	"dialysis_catheter": 108,
	"defibrillator":     108,
	"central_line":      105,
	"arterial_line":     105,
	"pacemaker":         105,
	"vp_shunt":          105,

	// vein-access notes
	"port_access_only":        100,
	"difficult_venous_access": 60,
	"ultrasound_access_only":  55,
	"vein_preservation":       40,
}

// ranking bonuses
const (
	attentionBonus = 50
	pendingBonus   = 25
	recentBonus12h = 25
	recentBonus24h = 15
	watchBonus     = 20
)

// Score computes the priority score of one instance snapshot at a given
// time. Deterministic for fixed inputs.
func (r *Registry) Score(inst *MarkerInstance, now time.Time) int {
	score, ok := categoryWeights[inst.Category]
	if !ok {
		score = defaultCategoryWeight
	}
	if floor, ok := priorityOverrides[inst.MarkerType]; ok && floor > score {
		score = floor
	}

	if inst.RequiresAttention {
		score += attentionBonus
	}
	if inst.Status == StatusPendingConfirmation {
		score += pendingBonus
	}
	switch age := now.Sub(inst.CreatedAt); {
	case age <= 12*time.Hour:
		score += recentBonus12h
	case age <= 24*time.Hour:
		score += recentBonus24h
	}
	if len(inst.Details.ComplicationsWatch) > 0 {
		score += watchBonus
	}
	return score
}

// Rank filters, scores, and orders a snapshot of marker instances,
// returning at most limit instances, highest priority first. Inactive
// and rejected instances never appear; status-badge types are dropped
// when excludeStatusBadges is set. Ties keep their original input order.
func (r *Registry) Rank(instances []*MarkerInstance, limit int, excludeStatusBadges bool, now time.Time) []*MarkerInstance {
	if limit <= 0 {
		return nil
	}

	type scored struct {
		inst  *MarkerInstance
		score int
	}
	eligible := make([]scored, 0, len(instances))
	for _, inst := range instances {
		if !inst.IsActive || inst.Status == StatusRejected {
			continue
		}
		if excludeStatusBadges {
			if def, ok := r.Get(inst.MarkerType); ok && def.IsStatusBadge {
				continue
			}
		}
		eligible = append(eligible, scored{inst: inst, score: r.Score(inst, now)})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	if limit > len(eligible) {
		limit = len(eligible)
	}
	out := make([]*MarkerInstance, limit)
	for i := 0; i < limit; i++ {
		out[i] = eligible[i].inst
	}
	return out
}
