package models

import (
	"encoding/json"
	"time"
)

const (
	PlanKindSubscription = "subscription"
	PlanKindSelfHosted   = "self_hosted"
)

// Plan is a purchasable tier. Pricing fields are populated according to the
// plan kind: subscription plans carry monthly/yearly prices, self-hosted
// plans carry a one-time price.
type Plan struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	Name                string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Kind                string        `gorm:"type:varchar(20);not null;index" json:"type"`
	PriceMonthly        *float64      `json:"price_monthly,omitempty"`
	PriceYearly         *float64      `json:"price_yearly,omitempty"`
	PriceOneTime        *float64      `json:"price_one_time,omitempty"`
	UserLimit           int           `gorm:"not null" json:"user_limit"`
	AdditionalUserPrice *float64      `json:"additional_user_price,omitempty"`
	Description         string        `gorm:"type:text" json:"description"`
	Features            []PlanFeature `gorm:"foreignKey:PlanID" json:"-"`
	IsActive            bool          `gorm:"default:true;index" json:"is_active"`
	CreatedAt           time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// PlanFeature is one ordered feature-key grant on a plan. Keys reference
// Feature.FeatureKey; a dangling key is tolerated by the resolver.
type PlanFeature struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PlanID     uint   `gorm:"not null;index:ux_plan_features_plan_key,unique,priority:1" json:"plan_id"`
	FeatureKey string `gorm:"type:varchar(100);not null;index:ux_plan_features_plan_key,unique,priority:2" json:"feature_key"`
	Position   int    `gorm:"not null;default:0" json:"position"`
}

// MarshalJSON flattens the plan's feature grants into a "features" key list,
// the shape the API contract promises. The join rows themselves stay internal.
func (p Plan) MarshalJSON() ([]byte, error) {
	type alias Plan
	return json.Marshal(struct {
		alias
		Features []string `json:"features"`
	}{alias(p), p.FeatureKeys()})
}

// FeatureKeys returns the plan's granted feature keys in grant order.
func (p *Plan) FeatureKeys() []string {
	keys := make([]string, 0, len(p.Features))
	for _, f := range p.Features {
		keys = append(keys, f.FeatureKey)
	}
	return keys
}

// IsSubscription reports whether the plan bills on a recurring cycle.
func (p *Plan) IsSubscription() bool {
	return p.Kind == PlanKindSubscription
}

// BillingCycle returns the billing cycle implied by the plan kind.
func (p *Plan) BillingCycle() string {
	if p.IsSubscription() {
		return BillingCycleMonthly
	}
	return BillingCycleOneTime
}
