package fixtures

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/judgekit/team-fixtures/models"
)

// DefaultTeamCategories returns the categories a fresh contest starts with.
func DefaultTeamCategories() []models.TeamCategory {
	return []models.TeamCategory{
		{Name: "System", SortOrder: 9, Color: "#ff2bea", Visible: false},
		{Name: "Self-Registered", SortOrder: 8, Color: "#33cc44", Visible: true, AllowSelfRegistration: true},
		{Name: "Participants", SortOrder: 0, Visible: true},
		{Name: ObserversCategory, SortOrder: 1, Color: "#ffcc33", Visible: true},
	}
}

// SeedTeamCategories creates every default category that does not exist yet.
// Existing categories are left untouched.
type SeedTeamCategories struct{}

func (SeedTeamCategories) Name() string { return "default-team-categories" }

func (f SeedTeamCategories) Load(ctx context.Context, tx *gorm.DB) error {
	repo := models.NewTeamCategoriesRepository(tx)

	for _, category := range DefaultTeamCategories() {
		_, err := repo.GetByName(ctx, category.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, models.ErrTeamCategoryNotFound) {
			return fmt.Errorf("fixture %s: find team category %q: %w", f.Name(), category.Name, err)
		}

		if err := repo.Create(ctx, &category); err != nil {
			return &CommitError{Fixture: f.Name(), Err: err}
		}
	}
	return nil
}
