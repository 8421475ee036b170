package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Tip is a single spectator guess for the current or an archived round.
type Tip struct {
	bun.BaseModel `bun:"table:tips,alias:t" json:"-"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id"`
	ViewerName   string     `bun:"viewer_name,notnull" json:"viewer_name"`
	PlayerName   string     `bun:"player_name,notnull" json:"player_name"`
	PlayerClub   string     `bun:"player_club,notnull" json:"player_club"`
	GuessedSpeed float64    `bun:"guessed_speed,notnull,type:double precision" json:"guessed_speed"`
	Archived     bool       `bun:"archived,notnull,default:false" json:"archived"`
	ArchivedAt   *time.Time `bun:"archived_at" json:"archived_at"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
