package repository

import (
	"github.com/velorahq/veloracrm/app/models"
	"gorm.io/gorm"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// CreateExclusive inserts a subscription while holding the invariant that a
// company has at most one active subscription. The existence check and the
// insert share one transaction.
func (r *subscriptionRepository) CreateExclusive(sub *models.Subscription) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Subscription{}).
			Where("company_id = ? AND status = ?", sub.CompanyID, models.SubscriptionStatusActive).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateActiveSubscription
		}
		return tx.Create(sub).Error
	})
}

// GetActiveByCompany retrieves the company's active subscription
func (r *subscriptionRepository) GetActiveByCompany(companyID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("company_id = ? AND status = ?", companyID, models.SubscriptionStatusActive).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByCompany retrieves the company's most recent subscription of any status
func (r *subscriptionRepository) GetByCompany(companyID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("company_id = ?", companyID).Order("id DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByID retrieves a subscription by its ID
func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update updates an existing subscription
func (r *subscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}
