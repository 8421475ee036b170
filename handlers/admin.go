package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/speedtip/board"
	mw "github.com/padraicbc/speedtip/middleware"
	"github.com/padraicbc/speedtip/scoring"
)

type gateRequest struct {
	Open *bool `json:"open"`
}

// Tips returns the current round grouped by player, together with the gate
// state and a summary of the guesses.
func (h *Handler) Tips(c echo.Context) error {
	ctx := c.Request().Context()
	tips, err := h.svc.ListActive(ctx, mw.Credential(c))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, envelope{
		"tips":      tips,
		"groups":    board.GroupByPlayer(tips, h.comparator()),
		"tips_open": h.svc.IsOpen(ctx),
		"summary":   board.Summarize(tips),
	})
}

// SetGate opens or closes submissions.
func (h *Handler) SetGate(c echo.Context) error {
	var req gateRequest
	if err := c.Bind(&req); err != nil || req.Open == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "open is required")
	}
	if err := h.svc.SetOpen(c.Request().Context(), mw.Credential(c), *req.Open); err != nil {
		return err
	}
	return ok(c, http.StatusOK, envelope{"tips_open": *req.Open})
}

// Evaluate ranks the current round against the real winner and speed.
func (h *Handler) Evaluate(c echo.Context) error {
	var out scoring.Outcome
	if err := c.Bind(&out); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	results, err := h.svc.Evaluate(c.Request().Context(), mw.Credential(c), out)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, envelope{"outcome": out, "results": results})
}

// Archive moves the current round into history and reopens submissions.
func (h *Handler) Archive(c echo.Context) error {
	if err := h.svc.ArchiveAndReset(c.Request().Context(), mw.Credential(c)); err != nil {
		return err
	}
	return ok(c, http.StatusOK, envelope{"tips_open": true})
}

// History returns archived rounds, newest first.
func (h *Handler) History(c echo.Context) error {
	tips, err := h.svc.ListArchived(c.Request().Context(), mw.Credential(c))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, envelope{"history": board.GroupByArchive(tips, h.loc, h.comparator())})
}
