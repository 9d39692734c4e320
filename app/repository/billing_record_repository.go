package repository

import (
	"github.com/velorahq/veloracrm/app/models"
	"gorm.io/gorm"
)

// billingRecordRepository implements the BillingRecordRepository interface
type billingRecordRepository struct {
	db *gorm.DB
}

// NewBillingRecordRepository creates a new billing record repository instance
func NewBillingRecordRepository(db *gorm.DB) BillingRecordRepository {
	return &billingRecordRepository{db: db}
}

// Create appends a billing history record. Records are never updated.
func (r *billingRecordRepository) Create(record *models.BillingRecord) error {
	return r.db.Create(record).Error
}

// ListByCompany returns the company's billing history, newest first
func (r *billingRecordRepository) ListByCompany(companyID uint) ([]models.BillingRecord, error) {
	var records []models.BillingRecord
	err := r.db.Where("company_id = ?", companyID).
		Order("billing_date DESC").Find(&records).Error
	return records, err
}
