package handler

import (
	"strconv"

	"katiba/internal/format"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleRecentOrders lists the latest recorded orders
func (h *Handler) handleRecentOrders(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	orders, err := h.orderService.Recent(ctx)
	if err != nil {
		h.logger.Error("Failed to list recent orders", zap.Error(err))
		return c.Send(msgError, mainMenuMarkup())
	}

	if len(orders) == 0 {
		return c.Send(msgNoOrders, mainMenuMarkup())
	}
	return c.Send(msgPickOrder, ordersMarkup(orders))
}

// handleBookedOrders lists upcoming open orders
func (h *Handler) handleBookedOrders(c tele.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	orders, err := h.orderService.Upcoming(ctx)
	if err != nil {
		h.logger.Error("Failed to list booked orders", zap.Error(err))
		return c.Send(msgError, mainMenuMarkup())
	}

	if len(orders) == 0 {
		return c.Send(msgNoBooked, mainMenuMarkup())
	}
	return c.Send(msgPickBooked, ordersMarkup(orders))
}

// handleOrderDetails shows the full card of the pressed order
func (h *Handler) handleOrderDetails(c tele.Context) error {
	return h.showOrder(c, cleanCallbackData(c.Callback().Data))
}

func (h *Handler) showOrder(c tele.Context, data string) error {
	id, err := strconv.ParseInt(data, 10, 64)
	if err != nil || id <= 0 {
		return c.Respond(&tele.CallbackResponse{Text: msgStaleButton})
	}

	ctx, cancel := requestContext()
	defer cancel()

	order, err := h.orderService.Get(ctx, id)
	if err != nil {
		h.logger.Error("Failed to load order", zap.Int64("order_id", id), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}
	if order == nil {
		return c.Respond(&tele.CallbackResponse{Text: msgOrderMissing})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: msgOK}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(format.OrderDetails(*order, h.loc), mainMenuMarkup())
}
