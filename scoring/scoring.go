// Package scoring ranks a round's tips against the real outcome.
//
// Everything here is pure: results are recomputed on every call and never
// stored.
package scoring

import (
	"math"
	"sort"

	"github.com/padraicbc/speedtip/models"
)

const (
	// WinnerPoints is awarded for naming the actual winner.
	WinnerPoints = 1000
	// SpeedPoints is the speed bonus for an exact guess; it shrinks by one
	// point per unit of difference and never goes negative.
	SpeedPoints = 200
	// MaxScore is the best possible score.
	MaxScore = WinnerPoints + SpeedPoints
)

// Medal marks the first three correct-winner tips.
type Medal string

const (
	NoMedal Medal = ""
	Gold    Medal = "gold"
	Silver  Medal = "silver"
	Bronze  Medal = "bronze"
)

// Outcome is what actually happened.
type Outcome struct {
	Winner string  `json:"winner"`
	Speed  float64 `json:"speed"`
}

// Result is a tip with its evaluation.
type Result struct {
	models.Tip

	CorrectWinner bool    `json:"correct_winner"`
	SpeedDiff     float64 `json:"speed_diff"`
	Score         float64 `json:"score"`
	// Rank is the 1-based position inside the correct-winner block, 0 otherwise.
	Rank  int   `json:"rank"`
	Medal Medal `json:"medal,omitempty"`
	// Exact is set for a correct winner with zero speed difference.
	Exact bool `json:"exact"`
}

// Score returns the points for a single guess.
func Score(correctWinner bool, speedDiff float64) float64 {
	s := math.Max(0, SpeedPoints-speedDiff)
	if correctWinner {
		s += WinnerPoints
	}
	return s
}

// Evaluate scores every tip and returns them in ranking order:
// correct winners first by ascending speed difference, then everyone else in
// the order they were given.
func Evaluate(tips []models.Tip, out Outcome) []Result {
	results := make([]Result, len(tips))
	for i, tip := range tips {
		correct := tip.PlayerName == out.Winner
		diff := math.Abs(tip.GuessedSpeed - out.Speed)
		results[i] = Result{
			Tip:           tip,
			CorrectWinner: correct,
			SpeedDiff:     diff,
			Score:         Score(correct, diff),
			Exact:         correct && diff == 0,
		}
	}
	Sort(results)
	assignRanks(results)
	return results
}

// Sort orders results in place. It is stable and idempotent; incorrect-winner
// entries keep their relative order and are not sorted by speed difference.
func Sort(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.CorrectWinner != b.CorrectWinner {
			return a.CorrectWinner
		}
		if a.CorrectWinner {
			return a.SpeedDiff < b.SpeedDiff
		}
		return false
	})
}

// assignRanks counts positions in the correct block; equal differences still
// take separate ranks.
func assignRanks(results []Result) {
	rank := 0
	for i := range results {
		if !results[i].CorrectWinner {
			results[i].Rank = 0
			results[i].Medal = NoMedal
			continue
		}
		rank++
		results[i].Rank = rank
		results[i].Medal = medalFor(rank)
	}
}

func medalFor(rank int) Medal {
	switch rank {
	case 1:
		return Gold
	case 2:
		return Silver
	case 3:
		return Bronze
	}
	return NoMedal
}
