package repository

import (
	"github.com/velorahq/veloracrm/app/models"
	"gorm.io/gorm"
)

// featureRepository implements the FeatureRepository interface
type featureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new feature repository instance
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

// CreateBatch inserts the given features in one statement. The unique index
// on feature_key rejects duplicates.
func (r *featureRepository) CreateBatch(features []models.Feature) error {
	if len(features) == 0 {
		return nil
	}
	return r.db.Create(&features).Error
}

// List returns all registered features
func (r *featureRepository) List() ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Order("id ASC").Find(&features).Error
	return features, err
}

// Count returns the total number of registered features
func (r *featureRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Feature{}).Count(&count).Error
	return count, err
}
