// Package store reads and writes tips and the session flag through bun.
// It knows nothing about credentials or gate policy.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/padraicbc/speedtip/models"
)

// Store is the bun-backed repository.
type Store struct {
	db *bun.DB
}

// New wraps db.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// TipsOpen reads the session flag. found is false when the singleton row does
// not exist yet.
func (s *Store) TipsOpen(ctx context.Context) (open, found bool, err error) {
	session := &models.Session{}
	err = s.db.NewSelect().Model(session).
		Column("tips_open").
		Where("id = ?", models.SessionID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return session.TipsOpen, true, nil
}

// SetTipsOpen upserts the singleton session row.
func (s *Store) SetTipsOpen(ctx context.Context, open bool) error {
	return upsertSession(ctx, s.db, open)
}

// InsertTip stores a new tip and fills in its ID.
func (s *Store) InsertTip(ctx context.Context, tip *models.Tip) error {
	_, err := s.db.NewInsert().Model(tip).Exec(ctx)
	return err
}

// ActiveTips lists the current round by player name, fastest guess first.
func (s *Store) ActiveTips(ctx context.Context) ([]models.Tip, error) {
	tips := []models.Tip{}
	err := s.db.NewSelect().Model(&tips).
		Where("t.archived = ?", false).
		OrderExpr("t.player_name ASC, t.guessed_speed DESC").
		Scan(ctx)
	return tips, err
}

// ArchivedTips lists earlier rounds, newest archive first.
func (s *Store) ArchivedTips(ctx context.Context) ([]models.Tip, error) {
	tips := []models.Tip{}
	err := s.db.NewSelect().Model(&tips).
		Where("t.archived = ?", true).
		OrderExpr("t.archived_at DESC, t.player_name ASC, t.guessed_speed DESC").
		Scan(ctx)
	return tips, err
}

// ArchiveActive moves every active tip into history and reopens submissions.
// Both statements run in one transaction, archive first, so a reader never
// sees tips_open=true next to tips from the closed round.
func (s *Store) ArchiveActive(ctx context.Context, at time.Time) (int64, error) {
	var archived int64
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			TableExpr("tips").
			Set("archived = ?", true).
			Set("archived_at = ?", at).
			Where("archived = ?", false).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil {
			archived = n
		}
		return upsertSession(ctx, tx, true)
	})
	if err != nil {
		return 0, err
	}
	return archived, nil
}

func upsertSession(ctx context.Context, db bun.IDB, open bool) error {
	session := &models.Session{ID: models.SessionID, TipsOpen: open}
	q := db.NewInsert().Model(session)
	if db.Dialect().Name() == dialect.MySQL {
		q = q.On("DUPLICATE KEY UPDATE").Set("tips_open = VALUES(tips_open)")
	} else {
		q = q.On("CONFLICT (id) DO UPDATE").Set("tips_open = EXCLUDED.tips_open")
	}
	_, err := q.Exec(ctx)
	return err
}
