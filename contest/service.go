// Package contest runs a tipping round: the open/closed gate, public
// submissions and the password-gated admin operations.
package contest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/padraicbc/speedtip/auth"
	"github.com/padraicbc/speedtip/models"
	"github.com/padraicbc/speedtip/roster"
	"github.com/padraicbc/speedtip/scoring"
)

// Store is the persistence the contest needs. store.Store implements it.
type Store interface {
	TipsOpen(ctx context.Context) (open, found bool, err error)
	SetTipsOpen(ctx context.Context, open bool) error
	InsertTip(ctx context.Context, tip *models.Tip) error
	ActiveTips(ctx context.Context) ([]models.Tip, error)
	ArchivedTips(ctx context.Context) ([]models.Tip, error)
	ArchiveActive(ctx context.Context, at time.Time) (int64, error)
}

// Service holds the contest operations. It keeps no state of its own
// between calls.
type Service struct {
	store   Store
	verify  auth.Verifier
	roster  *roster.Roster
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithTimeout bounds each store round trip.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds a Service.
func New(st Store, v auth.Verifier, r *roster.Roster, opts ...Option) *Service {
	s := &Service{
		store:   st,
		verify:  v,
		roster:  r,
		timeout: 10 * time.Second,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Contestants returns the roster.
func (s *Service) Contestants() []roster.Contestant {
	return s.roster.All()
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) authorize(credential string) error {
	if !s.verify.Verify(credential) {
		return ErrUnauthorized
	}
	return nil
}

// IsOpen reports whether the public form should be shown. A missing session
// row or any store failure counts as open.
func (s *Service) IsOpen(ctx context.Context) bool {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	open, found, err := s.store.TipsOpen(ctx)
	if err != nil {
		s.log.Warn("gate read failed, assuming open", zap.Error(err))
		return true
	}
	if !found {
		return true
	}
	return open
}

// SetOpen opens or closes submissions and reads the flag back to make sure
// the store kept it.
func (s *Service) SetOpen(ctx context.Context, credential string, open bool) error {
	if err := s.authorize(credential); err != nil {
		return err
	}
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.store.SetTipsOpen(ctx, open); err != nil {
		return unavailable(err)
	}
	stored, found, err := s.store.TipsOpen(ctx)
	if err != nil || !found || stored != open {
		s.log.Error("gate write not confirmed",
			zap.Bool("want", open), zap.Bool("got", stored), zap.Bool("found", found), zap.Error(err))
		return &Error{Kind: KindWriteNotConfirmed, Message: ErrWriteNotConfirmed.Message, Cause: err}
	}
	s.log.Info("gate changed", zap.Bool("open", open))
	return nil
}

// Submit validates and stores a public tip. Unlike IsOpen, the gate here is
// closed unless the session row explicitly says open.
func (s *Service) Submit(ctx context.Context, in TipInput) error {
	in, err := in.Validate(s.roster)
	if err != nil {
		return err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	open, found, err := s.store.TipsOpen(ctx)
	if err != nil {
		return &Error{Kind: KindStoreUnavailable, Message: msgTipNotSaved, Cause: err}
	}
	if !found || !open {
		return ErrSubmissionsClosed
	}

	tip := &models.Tip{
		ViewerName:   in.ViewerName,
		PlayerName:   in.PlayerName,
		PlayerClub:   in.PlayerClub,
		GuessedSpeed: in.GuessedSpeed,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.InsertTip(ctx, tip); err != nil {
		return &Error{Kind: KindStoreUnavailable, Message: msgTipNotSaved, Cause: err}
	}
	s.log.Info("tip submitted",
		zap.Int64("id", tip.ID), zap.String("player", tip.PlayerName), zap.Float64("speed", tip.GuessedSpeed))
	return nil
}

// ListActive returns the current round's tips.
func (s *Service) ListActive(ctx context.Context, credential string) ([]models.Tip, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	tips, err := s.store.ActiveTips(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return tips, nil
}

// ListArchived returns every archived tip, newest round first.
func (s *Service) ListArchived(ctx context.Context, credential string) ([]models.Tip, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	tips, err := s.store.ArchivedTips(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return tips, nil
}

// ArchiveAndReset closes the current round and starts the next one open.
func (s *Service) ArchiveAndReset(ctx context.Context, credential string) error {
	if err := s.authorize(credential); err != nil {
		return err
	}
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	n, err := s.store.ArchiveActive(ctx, s.now().UTC())
	if err != nil {
		return unavailable(err)
	}
	s.log.Info("round archived", zap.Int64("tips", n))
	return nil
}

// Evaluate ranks the current round against the real outcome.
func (s *Service) Evaluate(ctx context.Context, credential string, out scoring.Outcome) ([]scoring.Result, error) {
	if err := s.authorize(credential); err != nil {
		return nil, err
	}
	out, err := validateOutcome(out)
	if err != nil {
		return nil, err
	}
	tips, err := s.ListActive(ctx, credential)
	if err != nil {
		return nil, err
	}
	return scoring.Evaluate(tips, out), nil
}
