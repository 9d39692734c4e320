package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Company is the tenant unit. SubscriptionID is a denormalized pointer to the
// current subscription, kept in sync by the billing service whenever a
// subscription is created.
type Company struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(200);not null" json:"company_name" validate:"required,min=2,max=200"`
	Size           string    `gorm:"type:varchar(50)" json:"company_size" validate:"max=50"`
	Industry       string    `gorm:"type:varchar(100)" json:"industry" validate:"max=100"`
	Location       string    `gorm:"type:varchar(150)" json:"location" validate:"max=150"`
	CRMType        string    `gorm:"type:varchar(50)" json:"crm_type" validate:"max=50"`
	SubscriptionID *uint     `gorm:"index" json:"subscription_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Company) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
