package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const gateWriteWait = 10 * time.Second

type gateMessage struct {
	Open bool `json:"open"`
}

// GateStream pushes the gate state over a websocket: once on connect and
// again whenever it changes. Each connection polls on its own ticker.
func (h *Handler) GateStream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		h.log.Debug("gate upgrade failed", zap.Error(err))
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Clients never send anything; reading only notices when they go away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(open bool) error {
		_ = conn.SetWriteDeadline(time.Now().Add(gateWriteWait))
		return conn.WriteJSON(gateMessage{Open: open})
	}

	last := h.svc.IsOpen(ctx)
	if err := send(last); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			open := h.svc.IsOpen(ctx)
			if ctx.Err() != nil {
				return nil
			}
			if open == last {
				continue
			}
			last = open
			if err := send(open); err != nil {
				h.log.Debug("gate stream closed", zap.Error(err))
				return nil
			}
		}
	}
}
