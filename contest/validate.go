package contest

import (
	"math"
	"strings"

	"github.com/padraicbc/speedtip/roster"
	"github.com/padraicbc/speedtip/scoring"
)

// MaxSpeed is the highest speed a guess or outcome may carry.
const MaxSpeed = 300

// TipInput is a public submission before validation.
type TipInput struct {
	ViewerName   string  `json:"viewer_name"`
	PlayerName   string  `json:"player_name"`
	PlayerClub   string  `json:"player_club"`
	GuessedSpeed float64 `json:"guessed_speed"`
}

// Validate normalizes in against the roster. The club is taken from the
// roster when omitted and must match it when given.
func (in TipInput) Validate(r *roster.Roster) (TipInput, error) {
	in.ViewerName = strings.TrimSpace(in.ViewerName)
	in.PlayerName = strings.TrimSpace(in.PlayerName)
	in.PlayerClub = strings.TrimSpace(in.PlayerClub)

	if in.ViewerName == "" || in.PlayerName == "" {
		return in, invalid("please fill in all fields")
	}
	if !validSpeed(in.GuessedSpeed) {
		return in, invalid("speed must be greater than 0 and at most 300")
	}
	c, ok := r.Find(in.PlayerName)
	if !ok {
		return in, invalid("unknown player")
	}
	if in.PlayerClub == "" {
		in.PlayerClub = c.Club
	} else if in.PlayerClub != c.Club {
		return in, invalid("player does not play for that club")
	}
	return in, nil
}

// validateOutcome only rejects outcomes that cannot be scored. A winner
// outside the roster is allowed and simply makes every tip incorrect.
func validateOutcome(out scoring.Outcome) (scoring.Outcome, error) {
	out.Winner = strings.TrimSpace(out.Winner)
	if out.Winner == "" {
		return out, invalid("please choose the winner")
	}
	if math.IsNaN(out.Speed) || math.IsInf(out.Speed, 0) || out.Speed < 0 {
		return out, invalid("actual speed must be a number of at least 0")
	}
	return out, nil
}

func validSpeed(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v <= MaxSpeed
}
