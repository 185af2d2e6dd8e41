package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zamtimber/shop/internal/events"
	"github.com/zamtimber/shop/internal/logging"
)

type ContactHandler struct {
	Events events.Publisher
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact accepts a contact-form submission. Nothing is stored; the
// endpoint validates, acknowledges and emits an event for anyone listening.
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "contact.submit")

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_bind_error", "status", 400, "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		l.Warn("contact_validation_error", "status", 400)
		return errorResponse(c, http.StatusBadRequest, "Name, email, and message are required")
	}

	publish(c, h.Events, events.TopicContact, req.Email, map[string]any{
		"type":    "contact_submitted",
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
	})

	l.Info("contact form received", "email", req.Email)
	return c.JSON(http.StatusOK, Response{Success: true, Message: "Message received successfully"})
}
