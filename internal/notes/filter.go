package notes

import (
	"sort"
	"strings"
	"time"

	"github.com/daybookhq/daybook/internal/models"
)

// Filter is the note list filter state. Zero values mean "not filtering on
// this dimension".
type Filter struct {
	Query         string
	Category      string
	Priority      string
	FavoritesOnly bool
}

// priorityWeight orders notes High > Medium > Low. Unknown or empty
// priorities weigh the same as Medium.
func priorityWeight(priority string) int {
	switch priority {
	case models.NotePriorityHigh:
		return 3
	case models.NotePriorityLow:
		return 1
	default:
		return 2
	}
}

// ApplyFilter filters and sorts a note list. The search query matches
// case-insensitively against title, content, category and tags; category,
// priority and favorite filters are exact. The result is sorted by priority
// descending, ties broken by most recent update (falling back to creation
// time). The input slice is never mutated and the function is idempotent:
// the same inputs always produce the same ordering.
func ApplyFilter(all []models.Note, f Filter) []models.Note {
	out := make([]models.Note, 0, len(all))

	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, n := range all {
		if query != "" && !matchesQuery(n, query) {
			continue
		}
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		if f.Priority != "" && n.Priority != f.Priority {
			continue
		}
		if f.FavoritesOnly && !n.IsFavorite {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := priorityWeight(out[i].Priority), priorityWeight(out[j].Priority)
		if wi != wj {
			return wi > wj
		}
		return recency(out[i]).After(recency(out[j]))
	})

	return out
}

func matchesQuery(n models.Note, query string) bool {
	return strings.Contains(strings.ToLower(n.Title), query) ||
		strings.Contains(strings.ToLower(n.Content), query) ||
		strings.Contains(strings.ToLower(n.Category), query) ||
		strings.Contains(strings.ToLower(n.Tags), query)
}

func recency(n models.Note) time.Time {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt
	}
	return n.CreatedAt
}
