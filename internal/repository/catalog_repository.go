package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kubaxi/service-funnel/internal/domain/catalog"
)

// LocationModel is the GORM model for the locations table.
type LocationModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"not null;size:120;index"`
	Province string    `gorm:"not null;size:80"`
}

// TableName returns the table name for the GORM model.
func (LocationModel) TableName() string {
	return "locations"
}

// ExcursionModel is the GORM model for the excursions table.
type ExcursionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Spot          string    `gorm:"not null;size:120;index"`
	Title         string    `gorm:"not null;size:200"`
	Description   string    `gorm:"type:text"`
	Duration      string    `gorm:"size:80"`
	DepartureTime string    `gorm:"size:80"`
	Price         float64   `gorm:"not null"`
	ImageURL      string    `gorm:"size:500"`
}

// TableName returns the table name for the GORM model.
func (ExcursionModel) TableName() string {
	return "excursions"
}

// TravelPackageModel is the GORM model for the travel_packages table.
type TravelPackageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null;size:200"`
	Description    string    `gorm:"type:text"`
	Destinations   string    `gorm:"type:text"`
	Includes       string    `gorm:"type:text"`
	Price          float64   `gorm:"not null"`
	DurationDays   int       `gorm:"not null"`
	DurationNights int       `gorm:"not null"`
	Region         string    `gorm:"not null;size:40;index"`
}

// TableName returns the table name for the GORM model.
func (TravelPackageModel) TableName() string {
	return "travel_packages"
}

// GormLocationRepository is the GORM-based implementation of
// catalog.LocationRepository.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Search returns locations whose name contains the query, case-insensitive,
// ordered by name.
func (r *GormLocationRepository) Search(ctx context.Context, query string, limit int) ([]catalog.Location, error) {
	var models []LocationModel
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	locations := make([]catalog.Location, len(models))
	for i, m := range models {
		locations[i] = catalog.Location{ID: m.ID, Name: m.Name, Province: m.Province}
	}
	return locations, nil
}

// GormCatalogRepository is the GORM-based implementation of
// catalog.CatalogRepository.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ExcursionSpots returns the distinct spot names with excursions, ordered by
// name.
func (r *GormCatalogRepository) ExcursionSpots(ctx context.Context) ([]string, error) {
	var spots []string
	if err := r.db.WithContext(ctx).
		Model(&ExcursionModel{}).
		Distinct("spot").
		Order("spot ASC").
		Pluck("spot", &spots).Error; err != nil {
		return nil, fmt.Errorf("failed to list excursion spots: %w", err)
	}
	return spots, nil
}

// ExcursionsBySpot returns the excursions anchored to the given spot, ordered
// by title.
func (r *GormCatalogRepository) ExcursionsBySpot(ctx context.Context, spot string) ([]catalog.Excursion, error) {
	var models []ExcursionModel
	if err := r.db.WithContext(ctx).
		Where("spot = ?", spot).
		Order("title ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list excursions for %s: %w", spot, err)
	}

	excursions := make([]catalog.Excursion, len(models))
	for i, m := range models {
		excursions[i] = catalog.Excursion{
			ID:            m.ID,
			Spot:          m.Spot,
			Title:         m.Title,
			Description:   m.Description,
			Duration:      m.Duration,
			DepartureTime: m.DepartureTime,
			Price:         m.Price,
			ImageURL:      m.ImageURL,
		}
	}
	return excursions, nil
}

// Packages returns the whole travel-package catalog, ordered by region then
// price.
func (r *GormCatalogRepository) Packages(ctx context.Context) ([]catalog.TravelPackage, error) {
	var models []TravelPackageModel
	if err := r.db.WithContext(ctx).
		Order("region ASC, price ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	packages := make([]catalog.TravelPackage, len(models))
	for i, m := range models {
		packages[i] = catalog.TravelPackage{
			ID:             m.ID,
			Name:           m.Name,
			Description:    m.Description,
			Destinations:   m.Destinations,
			Includes:       m.Includes,
			Price:          m.Price,
			DurationDays:   m.DurationDays,
			DurationNights: m.DurationNights,
			Region:         m.Region,
		}
	}
	return packages, nil
}
