package repository

import (
	"errors"

	"github.com/velorahq/veloracrm/app/models"
	"gorm.io/gorm"
)

// ErrDuplicateActiveSubscription is returned by CreateExclusive when the
// company already holds an active subscription. The check runs inside the
// insert transaction so concurrent subscribes cannot both succeed.
var ErrDuplicateActiveSubscription = errors.New("company already has an active subscription")

// PlanRepository defines the interface for plan catalog database operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	GetByName(name string) (*models.Plan, error)
	ListActive() ([]models.Plan, error)
	Count() (int64, error)
	Update(plan *models.Plan) error
}

// FeatureRepository defines the interface for the feature registry
type FeatureRepository interface {
	CreateBatch(features []models.Feature) error
	List() ([]models.Feature, error)
	Count() (int64, error)
}

// SubscriptionRepository defines the interface for subscription records.
// Records are never hard-deleted; cancelled rows stay for billing history.
type SubscriptionRepository interface {
	CreateExclusive(sub *models.Subscription) error
	GetActiveByCompany(companyID uint) (*models.Subscription, error)
	GetByCompany(companyID uint) (*models.Subscription, error)
	GetByID(id uint) (*models.Subscription, error)
	Update(sub *models.Subscription) error
}

// CompanyRepository defines the interface for company rows
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	SetSubscription(companyID, subscriptionID uint) error
}

// BillingRecordRepository defines the interface for append-only billing history
type BillingRecordRepository interface {
	Create(record *models.BillingRecord) error
	ListByCompany(companyID uint) ([]models.BillingRecord, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	CountByCompany(companyID uint) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Plan          PlanRepository
	Feature       FeatureRepository
	Subscription  SubscriptionRepository
	Company       CompanyRepository
	BillingRecord BillingRecordRepository
	User          UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Plan:          NewPlanRepository(db),
		Feature:       NewFeatureRepository(db),
		Subscription:  NewSubscriptionRepository(db),
		Company:       NewCompanyRepository(db),
		BillingRecord: NewBillingRecordRepository(db),
		User:          NewUserRepository(db),
	}
}
