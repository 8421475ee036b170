package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/speedtip/middleware"
)

// Register mounts the JSON API on e.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")

	// Public
	api.GET("/gate", h.Gate)
	api.GET("/gate/ws", h.GateStream)
	api.GET("/contestants", h.Contestants)
	api.POST("/tips", h.SubmitTip)

	// Admin – shared secret in the X-Admin-Password header
	admin := api.Group("/admin", mw.AdminCredential())
	admin.GET("/tips", h.Tips)
	admin.PUT("/gate", h.SetGate)
	admin.POST("/evaluate", h.Evaluate)
	admin.POST("/archive", h.Archive)
	admin.GET("/history", h.History)
}
