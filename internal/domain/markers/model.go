package markers

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a marker type by clinical severity/role and drives
// the ranker's default weighting.
type Category string

const (
	CategoryCritical      Category = "critical"
	CategoryModerate      Category = "moderate"
	CategoryInformational Category = "informational"
	CategoryMonitoring    Category = "monitoring"
	CategoryChronic       Category = "chronic"
	CategoryNeurological  Category = "neurological"
)

// Laterality qualifies which side of the body an instance is on.
type Laterality string

const (
	LateralityLeft      Laterality = "left"
	LateralityRight     Laterality = "right"
	LateralityBilateral Laterality = "bilateral"
	LateralityNone      Laterality = ""
)

// InstanceStatus is the confirmation lifecycle state of a marker instance.
// Automated text matching creates instances as pending_confirmation;
// direct clinician placement creates them confirmed. Rejection is terminal.
type InstanceStatus string

const (
	StatusPendingConfirmation InstanceStatus = "pending_confirmation"
	StatusConfirmed           InstanceStatus = "confirmed"
	StatusRejected            InstanceStatus = "rejected"
)

// BodyView selects which silhouette a marker is drawn on.
type BodyView string

const (
	ViewFront BodyView = "front"
	ViewBack  BodyView = "back"
)

// Position is a point in the normalized body-diagram space. Both
// coordinates are percentages of the diagram bounding box, 0-100.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LateralityAdjustments overrides the default position when an instance
// specifies a side. A type either has both sides or is midline (nil).
type LateralityAdjustments struct {
	Left  Position `json:"left"`
	Right Position `json:"right"`
}

// Family groups marker types. Family order is part of the keyword
// resolution contract and must not be reordered.
type Family string

const (
	FamilyVascularAccess Family = "vascular_access"
	FamilyVeinAccess     Family = "vein_access"
	FamilyDrainageTubes  Family = "drainage_tubes"
	FamilyWoundsSurgical Family = "wounds_surgical"
	FamilyOrthopedic     Family = "orthopedic"
	FamilyMonitoring     Family = "monitoring_devices"
	FamilyImplants       Family = "implants"
	FamilyChronic        Family = "chronic_conditions"
	FamilyNeurological   Family = "neurological_conditions"
	FamilyPrecautions    Family = "precautions"
	FamilyIsolation      Family = "isolation"
	FamilyCodeStatus     Family = "code_status"
	FamilyAlerts         Family = "alerts"
)

// MarkerTypeDefinition is one immutable catalog entry.
type MarkerTypeDefinition struct {
	Type        string   `json:"type"`
	DisplayName string   `json:"display_name"`
	Category    Category `json:"category"`
	Family      Family   `json:"family"`

	DefaultBodyRegion string   `json:"default_body_region"`
	DefaultBodyView   BodyView `json:"default_body_view"`
	DefaultPosition   Position `json:"default_position"`

	// Nil means the type is midline / not lateralizable.
	Laterality *LateralityAdjustments `json:"laterality_adjustments,omitempty"`

	// Lowercase phrases matched against narrative text, in declaration
	// order. Never empty.
	Keywords []string `json:"keywords"`

	// Informational diagnostic code association; no algorithm reads it.
	ICD10 string `json:"icd10,omitempty"`

	// Status badges render off-body as always-visible indicators.
	IsStatusBadge bool   `json:"is_status_badge,omitempty"`
	BadgeColor    string `json:"badge_color,omitempty"`
	BadgeIcon     string `json:"badge_icon,omitempty"`
}

// InstanceDetails holds free-form per-instance clinical annotations.
type InstanceDetails struct {
	ComplicationsWatch []string `db:"complications_watch" json:"complications_watch,omitempty"`
	Note               string   `db:"note" json:"note,omitempty"`
}

// MarkerInstance is a concrete, per-patient occurrence of a marker type.
// The engine reads instances; lifecycle writes go through the Service.
type MarkerInstance struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	MarkerType string    `db:"marker_type" json:"marker_type"`

	// Denormalized from the type definition so instance-level override
	// remains possible; the ranker reads this copy.
	Category Category `json:"category"`

	Laterality        Laterality      `db:"laterality" json:"laterality,omitempty"`
	Status            InstanceStatus  `db:"status" json:"status"`
	IsActive          bool            `db:"is_active" json:"is_active"`
	RequiresAttention bool            `db:"requires_attention" json:"requires_attention"`
	Details           InstanceDetails `db:"details" json:"details"`
	SourceText        string          `db:"source_text" json:"source_text,omitempty"`
	CreatedBy         string          `db:"created_by" json:"created_by,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// PlacedMarker is a renderable anatomical marker: an instance joined with
// its resolved diagram position.
type PlacedMarker struct {
	Instance    *MarkerInstance `json:"instance"`
	DisplayName string          `json:"display_name"`
	BodyRegion  string          `json:"body_region"`
	BodyView    BodyView        `json:"body_view"`
	Position    Position        `json:"position"`
}

// StatusBadge is a renderable off-body indicator.
type StatusBadge struct {
	Instance    *MarkerInstance `json:"instance"`
	DisplayName string          `json:"display_name"`
	Color       string          `json:"color"`
	Icon        string          `json:"icon"`
}

// BodyDiagram is the full render payload for one patient.
type BodyDiagram struct {
	Markers []PlacedMarker `json:"markers"`
	Badges  []StatusBadge  `json:"badges"`
}
