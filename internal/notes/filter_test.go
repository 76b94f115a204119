package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybookhq/daybook/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestApplyFilterPriorityBeatsRecency(t *testing.T) {
	all := []models.Note{
		{ID: 1, Title: "low", Priority: models.NotePriorityLow, UpdatedAt: day("2024-01-01")},
		{ID: 2, Title: "high", Priority: models.NotePriorityHigh, UpdatedAt: day("2023-01-01")},
	}

	out := ApplyFilter(all, Filter{})
	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(1), out[1].ID)
}

func TestApplyFilterRecencyBreaksPriorityTies(t *testing.T) {
	all := []models.Note{
		{ID: 1, Priority: models.NotePriorityMedium, UpdatedAt: day("2024-01-01")},
		{ID: 2, Priority: models.NotePriorityMedium, UpdatedAt: day("2024-06-01")},
		// no updated_at recorded; falls back to created_at
		{ID: 3, Priority: models.NotePriorityMedium, CreatedAt: day("2024-03-01")},
	}

	out := ApplyFilter(all, Filter{})
	require.Len(t, out, 3)
	assert.Equal(t, []uint{2, 3, 1}, []uint{out[0].ID, out[1].ID, out[2].ID})
}

func TestApplyFilterUnknownPriorityWeighsMedium(t *testing.T) {
	all := []models.Note{
		{ID: 1, Priority: models.NotePriorityLow},
		{ID: 2, Priority: "Urgent"},
		{ID: 3, Priority: models.NotePriorityHigh},
	}

	out := ApplyFilter(all, Filter{})
	require.Len(t, out, 3)
	assert.Equal(t, uint(3), out[0].ID)
	assert.Equal(t, uint(2), out[1].ID)
	assert.Equal(t, uint(1), out[2].ID)
}

func TestApplyFilterQueryMatchesAllTextFields(t *testing.T) {
	all := []models.Note{
		{ID: 1, Title: "Grocery run"},
		{ID: 2, Content: "buy groceries tonight"},
		{ID: 3, Category: "Groceries"},
		{ID: 4, Tags: "errands,groceries"},
		{ID: 5, Title: "unrelated"},
	}

	out := ApplyFilter(all, Filter{Query: "GROC"})
	assert.Len(t, out, 4)

	// Blank queries do not filter
	out = ApplyFilter(all, Filter{Query: "   "})
	assert.Len(t, out, 5)
}

func TestApplyFilterExactDimensions(t *testing.T) {
	all := []models.Note{
		{ID: 1, Category: "Work", Priority: models.NotePriorityHigh, IsFavorite: true},
		{ID: 2, Category: "Work", Priority: models.NotePriorityLow},
		{ID: 3, Category: "Personal", Priority: models.NotePriorityHigh},
	}

	out := ApplyFilter(all, Filter{Category: "Work"})
	assert.Len(t, out, 2)

	out = ApplyFilter(all, Filter{Priority: models.NotePriorityHigh})
	assert.Len(t, out, 2)

	out = ApplyFilter(all, Filter{FavoritesOnly: true})
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestApplyFilterIdempotentAndNonMutating(t *testing.T) {
	all := []models.Note{
		{ID: 1, Title: "b", Priority: models.NotePriorityLow, UpdatedAt: day("2024-02-01")},
		{ID: 2, Title: "a", Priority: models.NotePriorityHigh, UpdatedAt: day("2024-01-01")},
		{ID: 3, Title: "c", Priority: models.NotePriorityMedium, UpdatedAt: day("2024-03-01")},
	}
	originalOrder := []uint{all[0].ID, all[1].ID, all[2].ID}

	f := Filter{}
	first := ApplyFilter(all, f)
	second := ApplyFilter(all, f)

	assert.Equal(t, first, second)
	assert.Equal(t, originalOrder, []uint{all[0].ID, all[1].ID, all[2].ID})
}
