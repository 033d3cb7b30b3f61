package markers

import (
	"fmt"
)

// Registry is the immutable catalog of marker type definitions. It is
// built once at startup and is safe for concurrent reads. Definitions
// are held in an ordered slice because iteration order is part of the
// keyword resolution contract.
type Registry struct {
	ordered  []*MarkerTypeDefinition
	byType   map[string]*MarkerTypeDefinition
	byFamily map[Family][]*MarkerTypeDefinition
	families []Family
}

// NewRegistry builds the registry from the compiled-in catalog. Errors
// here are programming-time regressions in the reference data and abort
// startup.
func NewRegistry() (*Registry, error) {
	return newRegistryFrom(catalog)
}

func newRegistryFrom(decls []familyDecl) (*Registry, error) {
	r := &Registry{
		byType:   make(map[string]*MarkerTypeDefinition),
		byFamily: make(map[Family][]*MarkerTypeDefinition),
	}
	for _, fd := range decls {
		r.families = append(r.families, fd.Family)
		for i := range fd.Types {
			def := fd.Types[i]
			def.Family = fd.Family
			if err := validateDefinition(&def); err != nil {
				return nil, fmt.Errorf("marker type %q: %w", def.Type, err)
			}
			if _, dup := r.byType[def.Type]; dup {
				return nil, fmt.Errorf("duplicate marker type %q", def.Type)
			}
			d := &def
			r.byType[def.Type] = d
			r.byFamily[fd.Family] = append(r.byFamily[fd.Family], d)
			r.ordered = append(r.ordered, d)
		}
	}
	return r, nil
}

func validateDefinition(def *MarkerTypeDefinition) error {
	if def.Type == "" {
		return fmt.Errorf("empty type identifier")
	}
	if def.DisplayName == "" {
		return fmt.Errorf("empty display name")
	}
	if len(def.Keywords) == 0 {
		return fmt.Errorf("no keywords")
	}
	if err := validatePosition(def.DefaultPosition); err != nil {
		return fmt.Errorf("default position: %w", err)
	}
	if def.Laterality != nil {
		if err := validatePosition(def.Laterality.Left); err != nil {
			return fmt.Errorf("left position: %w", err)
		}
		if err := validatePosition(def.Laterality.Right); err != nil {
			return fmt.Errorf("right position: %w", err)
		}
		// A zero-value side means the table was only half filled in.
		if (def.Laterality.Left == Position{}) || (def.Laterality.Right == Position{}) {
			return fmt.Errorf("laterality adjustments must define both left and right")
		}
	}
	if def.IsStatusBadge && (def.BadgeColor == "" || def.BadgeIcon == "") {
		return fmt.Errorf("status badge requires badge_color and badge_icon")
	}
	return nil
}

func validatePosition(p Position) error {
	if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
		return fmt.Errorf("coordinates (%v, %v) outside [0,100]", p.X, p.Y)
	}
	return nil
}

// Get returns the definition for a type identifier. Unknown identifiers
// are a normal outcome, reported via ok, never an error.
func (r *Registry) Get(markerType string) (*MarkerTypeDefinition, bool) {
	def, ok := r.byType[markerType]
	return def, ok
}

// All returns every definition in registry iteration order.
func (r *Registry) All() []*MarkerTypeDefinition {
	out := make([]*MarkerTypeDefinition, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Family returns the definitions of one family in declaration order.
func (r *Registry) Family(f Family) []*MarkerTypeDefinition {
	defs := r.byFamily[f]
	out := make([]*MarkerTypeDefinition, len(defs))
	copy(out, defs)
	return out
}

// Families returns the family identifiers in contractual order.
func (r *Registry) Families() []Family {
	out := make([]Family, len(r.families))
	copy(out, r.families)
	return out
}

// StatusBadgeTypes returns the types rendered as off-body indicators.
func (r *Registry) StatusBadgeTypes() []*MarkerTypeDefinition {
	var out []*MarkerTypeDefinition
	for _, def := range r.ordered {
		if def.IsStatusBadge {
			out = append(out, def)
		}
	}
	return out
}

// AnatomicalTypes returns the types anchored to a body coordinate.
func (r *Registry) AnatomicalTypes() []*MarkerTypeDefinition {
	var out []*MarkerTypeDefinition
	for _, def := range r.ordered {
		if !def.IsStatusBadge {
			out = append(out, def)
		}
	}
	return out
}

// Len reports how many marker types the registry holds.
func (r *Registry) Len() int {
	return len(r.ordered)
}
