package models

import "github.com/uptrace/bun"

// SessionID is the primary key of the only session row.
const SessionID = 1

// Session holds the submissions open/closed flag.
type Session struct {
	bun.BaseModel `bun:"table:session,alias:s" json:"-"`

	ID       int  `bun:"id,pk" json:"id"`
	TipsOpen bool `bun:"tips_open,notnull" json:"tips_open"`
}
