package fixtures

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/judgekit/team-fixtures/models"
)

// ObserversCategory is the team category opened for self-registration.
const ObserversCategory = "Observers"

// EnableSelfRegister lets teams register themselves into the Observers
// category. The category must already exist. Reapplying is harmless.
type EnableSelfRegister struct{}

func (EnableSelfRegister) Name() string { return "enable-self-register" }

func (f EnableSelfRegister) Load(ctx context.Context, tx *gorm.DB) error {
	repo := models.NewTeamCategoriesRepository(tx)

	category, err := repo.GetByName(ctx, ObserversCategory)
	if err != nil {
		if errors.Is(err, models.ErrTeamCategoryNotFound) {
			return &NotFoundError{Entity: "team category", Key: ObserversCategory}
		}
		return fmt.Errorf("fixture %s: find team category %q: %w", f.Name(), ObserversCategory, err)
	}

	category.AllowSelfRegistration = true
	if err := repo.Save(ctx, category); err != nil {
		return &CommitError{Fixture: f.Name(), Err: err}
	}
	return nil
}
