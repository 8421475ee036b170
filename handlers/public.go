package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/speedtip/contest"
)

// Gate reports whether the public form should be shown. It never fails.
func (h *Handler) Gate(c echo.Context) error {
	return ok(c, http.StatusOK, envelope{"open": h.svc.IsOpen(c.Request().Context())})
}

// Contestants lists the roster for the form and the evaluation picker.
func (h *Handler) Contestants(c echo.Context) error {
	return ok(c, http.StatusOK, envelope{"contestants": h.svc.Contestants()})
}

// SubmitTip accepts a public guess.
func (h *Handler) SubmitTip(c echo.Context) error {
	var in contest.TipInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Submit(c.Request().Context(), in); err != nil {
		return err
	}
	return ok(c, http.StatusCreated, nil)
}
