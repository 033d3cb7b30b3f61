package markers

// ResolvePosition computes the diagram coordinates for a marker type and
// an optional laterality qualifier. It is pure and total: every type has
// a valid default position, so there is no failure path. Bilateral and
// unqualified instances sit at the default; midline types ignore the
// qualifier entirely.
func ResolvePosition(def *MarkerTypeDefinition, laterality Laterality) Position {
	if def.Laterality == nil {
		return def.DefaultPosition
	}
	switch laterality {
	case LateralityLeft:
		return def.Laterality.Left
	case LateralityRight:
		return def.Laterality.Right
	default:
		return def.DefaultPosition
	}
}
