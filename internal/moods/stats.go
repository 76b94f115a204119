package moods

import (
	"time"

	"github.com/daybookhq/daybook/internal/models"
)

// streakWindow bounds the backward walk over the calendar.
const streakWindow = 30

// NotSetMood is reported when no mood was logged on the current day.
const NotSetMood = "Not set"

// Stats summarizes a user's mood history.
type Stats struct {
	MostCommonMood string `json:"most_common_mood"`
	TodayMood      string `json:"today_mood"`
	Streak         int    `json:"streak"`
}

// ComputeStats derives streak, today's mood and the most common mood from a
// mood history. Returns nil for an empty history.
//
// The streak is the number of consecutive days with at least one entry,
// walked backward from today for at most 30 days. A day with no entry stops
// the walk, with one deliberate exception: today itself having no entry does
// not stop it (it just contributes nothing), so yesterday's run still counts
// before today's mood is logged.
func ComputeStats(history []models.Mood, now time.Time) *Stats {
	if len(history) == 0 {
		return nil
	}

	stats := &Stats{
		MostCommonMood: mostCommonMood(history),
		TodayMood:      NotSetMood,
		Streak:         0,
	}

	for _, m := range history {
		if sameDay(m.Date, now) {
			stats.TodayMood = m.Mood
			break
		}
	}

	for i := 0; i < streakWindow; i++ {
		day := now.AddDate(0, 0, -i)
		found := false
		for _, m := range history {
			if sameDay(m.Date, day) {
				found = true
				break
			}
		}
		if found {
			stats.Streak++
		} else if i > 0 {
			break
		}
	}

	return stats
}

// mostCommonMood picks the label with the highest count. Ties go to the
// label seen first in the history.
func mostCommonMood(history []models.Mood) string {
	counts := make(map[string]int, len(history))
	order := make([]string, 0, len(history))
	for _, m := range history {
		if _, seen := counts[m.Mood]; !seen {
			order = append(order, m.Mood)
		}
		counts[m.Mood]++
	}

	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// sameDay compares calendar days in b's location. Stored dates come back
// from the database in UTC while "now" is the server's local clock, so both
// sides must be read on the same wall calendar before comparing.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
