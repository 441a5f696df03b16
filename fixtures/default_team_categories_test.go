package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judgekit/team-fixtures/internal/database/dbtest"
	"github.com/judgekit/team-fixtures/models"
)

func TestSeedTeamCategories(t *testing.T) {
	db := newStore(t)

	require.NoError(t, Apply(context.Background(), db, SeedTeamCategories{}))

	categories := loadCategories(t, db)
	for _, want := range DefaultTeamCategories() {
		got, ok := categories[want.Name]
		require.True(t, ok, "missing category %s", want.Name)
		assert.Equal(t, want.SortOrder, got.SortOrder)
		assert.Equal(t, want.Color, got.Color)
		assert.Equal(t, want.Visible, got.Visible)
		assert.Equal(t, want.AllowSelfRegistration, got.AllowSelfRegistration)
	}
}

func TestSeedTeamCategoriesKeepsExisting(t *testing.T) {
	db := newStore(t, models.TeamCategory{Name: "Observers", SortOrder: 5, AllowSelfRegistration: true})

	require.NoError(t, Apply(context.Background(), db, SeedTeamCategories{}))
	require.NoError(t, Apply(context.Background(), db, SeedTeamCategories{}))

	assert.Equal(t, int64(len(DefaultTeamCategories())), dbtest.CountRows(t, db, "team_categories"))
	categories := loadCategories(t, db)
	assert.Equal(t, 5, categories["Observers"].SortOrder)
	assert.True(t, categories["Observers"].AllowSelfRegistration)
}
