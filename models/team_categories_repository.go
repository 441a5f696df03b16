package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type TeamCategoriesRepository struct {
	db *gorm.DB
}

var (
	// ErrTeamCategoryNotFound is returned when a team category is not found.
	ErrTeamCategoryNotFound = errors.New("team category not found")

	// ErrTeamCategoryExists is returned when a category name is already taken.
	// Detection needs gorm's TranslateError enabled.
	ErrTeamCategoryExists = errors.New("team category already exists")
)

// NewTeamCategoriesRepository binds the repository to db, which may be a
// transaction handle.
func NewTeamCategoriesRepository(db *gorm.DB) *TeamCategoriesRepository {
	return &TeamCategoriesRepository{
		db: db,
	}
}

func (r *TeamCategoriesRepository) GetAll(ctx context.Context) ([]TeamCategory, error) {
	var categories []TeamCategory
	if err := r.db.WithContext(ctx).
		Order("sort_order, name").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetSelfRegistration returns the categories teams may register themselves into.
func (r *TeamCategoriesRepository) GetSelfRegistration(ctx context.Context) ([]TeamCategory, error) {
	var categories []TeamCategory
	if err := r.db.WithContext(ctx).
		Where("allow_self_registration = ?", true).
		Order("sort_order, name").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *TeamCategoriesRepository) GetByName(ctx context.Context, name string) (*TeamCategory, error) {
	var category TeamCategory
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamCategoryNotFound
		}
		return nil, err // Other DB error
	}
	return &category, nil
}

func (r *TeamCategoriesRepository) Create(ctx context.Context, category *TeamCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTeamCategoryExists
		}
		return err
	}
	return nil
}

// Save writes every column of an already persisted category.
func (r *TeamCategoriesRepository) Save(ctx context.Context, category *TeamCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}
