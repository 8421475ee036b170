package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/padraicbc/speedtip/board"
	"github.com/padraicbc/speedtip/contest"
)

// Options configures a Handler. Zero values fall back to sensible defaults.
type Options struct {
	Location         *time.Location
	Collation        language.Tag
	GatePollInterval time.Duration
	Logger           *zap.Logger
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	svc       *contest.Service
	log       *zap.Logger
	loc       *time.Location
	collation language.Tag
	poll      time.Duration
	upgrader  websocket.Upgrader
}

// New creates a Handler around the contest service.
func New(svc *contest.Service, opts Options) *Handler {
	h := &Handler{
		svc:       svc,
		log:       opts.Logger,
		loc:       opts.Location,
		collation: opts.Collation,
		poll:      opts.GatePollInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS is open for the API as well.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.loc == nil {
		h.loc = time.Local
	}
	if h.collation == language.Und {
		h.collation = language.Czech
	}
	if h.poll <= 0 {
		h.poll = 5 * time.Second
	}
	return h
}

// comparator builds a fresh collator; collators are not safe to share
// between requests.
func (h *Handler) comparator() board.Comparator {
	return board.NewCollator(h.collation)
}
