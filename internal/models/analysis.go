package models

import (
	"time"

	"github.com/stads98/tunji-real-estate-analyzer-sub002/internal/finance"
)

// AnalysisSnapshot is a persisted projection result for one (property,
// strategy) pair at a point in time. Recomputation is idempotent, so a
// snapshot is purely a cache-and-history record: re-analyzing writes a new
// row rather than mutating an old one. Ref is a UUIDv7 the UI and CSV export
// use to address a snapshot without leaking sequential IDs.
type AnalysisSnapshot struct {
	Base
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Ref        string `gorm:"size:36;uniqueIndex" json:"ref"`

	Strategy           string         `gorm:"not null" json:"strategy"`
	Result             finance.Result `gorm:"serializer:json" json:"result"`
	AssumptionsVersion time.Time      `json:"assumptions_version"`
}
