package models

import "time"

const (
	FeatureCategorySales     = "sales"
	FeatureCategoryGeneral   = "general"
	FeatureCategorySupport   = "support"
	FeatureCategoryMarketing = "marketing"
)

// Feature is a single gateable product capability. Core features are granted
// to every company regardless of plan.
type Feature struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FeatureKey  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"feature_key"`
	FeatureName string    `gorm:"type:varchar(150);not null" json:"feature_name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	IsCore      bool      `gorm:"default:false;index" json:"is_core"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
