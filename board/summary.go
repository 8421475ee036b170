package board

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/padraicbc/speedtip/models"
)

// Summary describes the spread of guessed speeds in a round.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes a Summary; an empty round yields the zero value.
func Summarize(tips []models.Tip) Summary {
	if len(tips) == 0 {
		return Summary{}
	}
	speeds := make([]float64, len(tips))
	for i, t := range tips {
		speeds[i] = t.GuessedSpeed
	}
	sort.Float64s(speeds)

	mean, std := stat.PopMeanStdDev(speeds, nil)
	return Summary{
		Count:  len(speeds),
		Mean:   mean,
		Median: median(speeds),
		StdDev: std,
		Min:    speeds[0],
		Max:    speeds[len(speeds)-1],
	}
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
