package models

// Grade is the closed condition vocabulary used throughout the assessment.
// GradeUnknown (the empty string) is a documented default: an unassessed
// category contributes nothing to the severity score.
type Grade string

const (
	GradeUnknown          Grade = ""
	GradeNew              Grade = "new"
	GradeGood             Grade = "good"
	GradeFair             Grade = "fair"
	GradePoor             Grade = "poor"
	GradeNeedsReplacement Grade = "needs_replacement"
)

// NeedsWork reports whether a grade is at or below the "needs work"
// threshold. Detail sub-fields (kitchen cabinets, bathroom fixtures) are
// only scored when their parent category needs work; cosmetic detail on an
// acceptable category is deliberately not charged for.
func (g Grade) NeedsWork() bool {
	switch g {
	case GradeFair, GradePoor, GradeNeedsReplacement:
		return true
	}
	return false
}

// BathroomCondition is one bathroom's assessment. Fixtures and tile are
// detail sub-fields gated on the bathroom itself needing work.
type BathroomCondition struct {
	Overall  Grade `json:"overall"`
	Fixtures Grade `json:"fixtures"`
	Tile     Grade `json:"tile"`
}

// BedroomCondition is one bedroom's assessment.
type BedroomCondition struct {
	Overall Grade `json:"overall"`
}

// ConditionReport is the structured walk-through assessment attached to a
// property. It is the sole input to the condition scorer; free-text notes in
// OtherIssues are treated as an opaque flag, never parsed.
type ConditionReport struct {
	Base
	PropertyID uint `gorm:"not null;uniqueIndex" json:"property_id"`

	Overall Grade `json:"overall"`

	// Structural and major systems
	Roof       Grade `json:"roof"`
	Foundation Grade `json:"foundation"`
	HVAC       Grade `json:"hvac"`
	Plumbing   Grade `json:"plumbing"`
	Electrical Grade `json:"electrical"`

	PlumbingLeaks     bool `json:"plumbing_leaks"`
	PolybutylenePipes bool `json:"polybutylene_pipes"`
	KnobAndTubeWiring bool `json:"knob_and_tube_wiring"`

	// Exterior
	Siding      Grade `json:"siding"`
	Windows     Grade `json:"windows"`
	Doors       Grade `json:"doors"`
	Gutters     Grade `json:"gutters"`
	Landscaping Grade `json:"landscaping"`
	Driveway    Grade `json:"driveway"`
	Fencing     Grade `json:"fencing"`

	// Interior
	Kitchen            Grade               `json:"kitchen"`
	KitchenCabinets    Grade               `json:"kitchen_cabinets"`
	KitchenCountertops Grade               `json:"kitchen_countertops"`
	KitchenAppliances  Grade               `json:"kitchen_appliances"`
	Bathrooms          []BathroomCondition `gorm:"serializer:json" json:"bathrooms"`
	Bedrooms           []BedroomCondition  `gorm:"serializer:json" json:"bedrooms"`
	InteriorGeneral    Grade               `json:"interior_general"`

	// Major defect flags; each one is independently additive in the score.
	Mold             bool   `json:"mold"`
	Termites         bool   `json:"termites"`
	WaterDamage      bool   `json:"water_damage"`
	FireDamage       bool   `json:"fire_damage"`
	StructuralIssues bool   `json:"structural_issues"`
	CodeViolations   bool   `json:"code_violations"`
	OtherIssues      string `json:"other_issues"`

	HasPool       bool  `json:"has_pool"`
	PoolCondition Grade `json:"pool_condition"`
}
