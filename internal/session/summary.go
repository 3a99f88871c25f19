package session

import (
	"time"

	"github.com/abiram/tonedrill/internal/analytics"
	"github.com/abiram/tonedrill/internal/curriculum"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	LevelID    string
	LevelName  string
	Duration   time.Duration
	Stats      analytics.SessionStats
	Insights   []string
	CanAdvance bool
}

// BuildSummary snapshots the session for the summary screen and decides
// whether the level's unlock threshold was met.
func BuildSummary(state *State) *Summary {
	stats := state.Engine.SessionStats()
	return &Summary{
		LevelID:    state.Level.ID,
		LevelName:  state.Level.Name,
		Duration:   time.Since(state.StartTime),
		Stats:      stats,
		Insights:   state.Engine.Insights(),
		CanAdvance: stats.TotalQuestions > 0 && curriculum.CanAdvance(state.Level.ID, stats.Accuracy),
	}
}
