package models

import "time"

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

const (
	BillingCycleMonthly = "monthly"
	BillingCycleOneTime = "one_time"
)

// Subscription binds a company to a plan. MaxUsers is a snapshot of the
// plan's user limit at subscribe time; later plan edits never change it.
// CurrentUsers is an advisory cache refreshed by the lifecycle service and
// must not be trusted for entitlement decisions.
type Subscription struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CompanyID       uint       `gorm:"not null;index:idx_subscriptions_company_status,priority:1" json:"company_id"`
	PlanID          uint       `gorm:"not null;index" json:"plan_id"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active';index:idx_subscriptions_company_status,priority:2" json:"status"`
	StartDate       time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate         *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	CurrentUsers    int        `gorm:"not null;default:0" json:"current_users"`
	MaxUsers        int        `gorm:"not null" json:"max_users"`
	BillingCycle    string     `gorm:"type:varchar(20)" json:"billing_cycle"`
	NextBillingDate *time.Time `gorm:"type:date" json:"next_billing_date,omitempty"`
	AutoRenew       bool       `gorm:"default:true" json:"auto_renew"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsActive reports whether the subscription currently entitles the company.
func (s *Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}
