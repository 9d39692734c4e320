package repository

import (
	"github.com/velorahq/veloracrm/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create persists a plan together with its ordered feature grants
func (r *planRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan by id, active or not. Existing subscriptions may
// reference retired plans, so inactive plans must still resolve here.
func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByName retrieves a plan by its exact name (case-sensitive)
func (r *planRepository) GetByName(name string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("name = ? COLLATE utf8mb4_bin", name).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListActive returns active plans in catalog insertion order
func (r *planRepository) ListActive() ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Preload("Features", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("is_active = ?", true).Order("id ASC").Find(&plans).Error
	return plans, err
}

// Count returns the total number of plans, active or not
func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}

// Update updates an existing plan
func (r *planRepository) Update(plan *models.Plan) error {
	return r.db.Save(plan).Error
}
