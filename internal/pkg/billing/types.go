package billing

import (
	"time"

	"github.com/velorahq/veloracrm/app/models"
)

// PlanInput is the payload for creating a catalog plan.
type PlanInput struct {
	Name                string   `json:"name" validate:"required,min=2,max=100"`
	Kind                string   `json:"type" validate:"required,oneof=subscription self_hosted"`
	PriceMonthly        *float64 `json:"price_monthly" validate:"omitempty,gte=0"`
	PriceYearly         *float64 `json:"price_yearly" validate:"omitempty,gte=0"`
	PriceOneTime        *float64 `json:"price_one_time" validate:"omitempty,gte=0"`
	UserLimit           int      `json:"user_limit" validate:"required,gt=0"`
	AdditionalUserPrice *float64 `json:"additional_user_price" validate:"omitempty,gte=0"`
	Description         string   `json:"description"`
	FeatureKeys         []string `json:"features"`
}

// CompanyProfile is the onboarding payload for a new company.
type CompanyProfile struct {
	Name     string `json:"company_name" validate:"required,min=2,max=200"`
	Size     string `json:"company_size"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	CRMType  string `json:"crm_type"`
}

// OnboardResult reports the outcome of company onboarding. The company is
// always created when the call succeeds; SubscriptionCreated tells whether
// the optional plan attachment also went through.
type OnboardResult struct {
	Company             *models.Company
	Subscription        *models.Subscription
	SubscriptionCreated bool
}

// BillingInput is the payload for appending a billing history record.
type BillingInput struct {
	CompanyID      uint      `json:"company_id" validate:"required"`
	SubscriptionID uint      `json:"subscription_id" validate:"required"`
	Amount         float64   `json:"amount" validate:"required,gt=0"`
	Currency       string    `json:"currency"`
	BillingDate    time.Time `json:"billing_date"`
	Status         string    `json:"status" validate:"required"`
	PaymentMethod  string    `json:"payment_method"`
	TransactionID  string    `json:"transaction_id"`
	InvoiceURL     string    `json:"invoice_url"`
}
