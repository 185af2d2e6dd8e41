package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zamtimber/shop/internal/cart"
	"github.com/zamtimber/shop/internal/events"
	"github.com/zamtimber/shop/internal/logging"
)

type CartHandler struct {
	Svc    *cart.Service
	Events events.Publisher
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sid := sessionID(c)
	summary := h.Svc.Summary(c.Request().Context(), sid)
	return c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")
	sid := sessionID(c)

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	m, err := h.Svc.Add(ctx, sid, req.ProductID, req.Quantity)
	if err != nil {
		return h.mutationError(c, l, "add_to_cart_error", err)
	}

	h.publishMutation(c, sid, m)
	l.Info("item added to cart", "product_id", req.ProductID, "outcome", m.Outcome)
	return c.JSON(http.StatusOK, m)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")
	sid := sessionID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	m, err := h.Svc.UpdateQuantity(ctx, sid, id, req.Quantity)
	if err != nil {
		return h.mutationError(c, l, "update_quantity_error", err)
	}

	h.publishMutation(c, sid, m)
	return c.JSON(http.StatusOK, m)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")
	sid := sessionID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid id")
	}

	m, err := h.Svc.Remove(ctx, sid, id)
	if err != nil {
		return h.mutationError(c, l, "remove_from_cart_error", err)
	}

	h.publishMutation(c, sid, m)
	return c.JSON(http.StatusOK, m)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")
	sid := sessionID(c)

	m, err := h.Svc.Clear(ctx, sid)
	if err != nil {
		return h.mutationError(c, l, "clear_cart_error", err)
	}

	h.publishMutation(c, sid, m)
	l.Info("cart cleared")
	return c.JSON(http.StatusOK, m)
}

// Checkout places the simulated order for the session's cart and clears it.
func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")
	sid := sessionID(c)

	receipt, err := h.Svc.Checkout(ctx, sid)
	if err != nil {
		return h.mutationError(c, l, "checkout_error", err)
	}

	publish(c, h.Events, events.TopicOrder, sid, map[string]any{
		"type":     "order_created",
		"order_id": receipt.OrderID,
		"total":    receipt.Total,
		"items":    receipt.Items,
	})

	l.Info("order placed", "order_id", receipt.OrderID, "total", receipt.Total)
	return c.JSON(http.StatusOK, receipt)
}

// publishMutation forwards a cart mutation as a cart_events message. This
// is the storefront's notification channel; the cart itself stays silent.
func (h *CartHandler) publishMutation(c echo.Context, sid string, m cart.Mutation) {
	event := map[string]any{
		"type":    "cart_" + string(m.Outcome),
		"session": sid,
	}
	if m.Item != nil {
		event["product_id"] = m.Item.ID
		event["name"] = m.Item.Name
		event["quantity"] = m.Item.Quantity
	}
	publish(c, h.Events, events.TopicCart, sid, event)
}

func (h *CartHandler) mutationError(c echo.Context, l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, cart.ErrValidation):
		l.Warn(op, "status", 400, "error", err)
		return errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, cart.ErrNotFound):
		l.Warn(op, "status", 404, "error", err)
		return errorResponse(c, http.StatusNotFound, err.Error())
	default:
		l.Error(op, "status", 500, "error", err)
		return errorResponse(c, http.StatusInternalServerError, "internal error")
	}
}
