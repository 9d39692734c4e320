package models

import "time"

const DefaultCurrency = "INR"

const (
	BillingRecordStatusPaid    = "paid"
	BillingRecordStatusPending = "pending"
	BillingRecordStatusFailed  = "failed"
)

// BillingRecord is one append-only billing history entry. Records are never
// mutated after creation; they exist for audit queries only.
type BillingRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CompanyID      uint      `gorm:"not null;index" json:"company_id"`
	SubscriptionID uint      `gorm:"not null;index" json:"subscription_id"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Currency       string    `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	BillingDate    time.Time `gorm:"type:date;not null;index" json:"billing_date"`
	Status         string    `gorm:"type:varchar(20);not null" json:"status"`
	PaymentMethod  string    `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	TransactionID  string    `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	InvoiceURL     string    `gorm:"type:varchar(255)" json:"invoice_url,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
