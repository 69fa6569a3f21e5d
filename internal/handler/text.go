package handler

import (
	"strings"

	"katiba/internal/form"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages: open form first, then the menu
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// "id" is answered even mid-form and leaves the form untouched
	if isIDRequest(text) {
		return h.handleID(c)
	}

	ctx, cancel := requestContext()
	defer cancel()

	reply, consumed := h.engine.Handle(ctx, userID, form.Text(text))
	if consumed {
		return h.sendReply(c, reply)
	}

	label, ok := h.menu.Match(text)
	if !ok {
		h.logger.Debug("Ignoring text outside of a form", zap.Int64("user_id", userID))
		return nil
	}

	switch label {
	case LabelNewOrder:
		return h.sendReply(c, h.engine.StartOrder(userID))
	case LabelRecentOrders:
		return h.handleRecentOrders(c)
	case LabelBookedOrders:
		return h.handleBookedOrders(c)
	case LabelMySpecialties:
		return h.sendReply(c, h.engine.StartProfileEdit(ctx, userID))
	case LabelHelp:
		return h.handleHelp(c)
	}
	return nil
}

func isIDRequest(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "id")
}

// sendReply sends an engine reply as a new message. Picker replies carry
// the inline picker, everything else keeps the menu keyboard.
func (h *Handler) sendReply(c tele.Context, reply form.Reply) error {
	if reply.Picker != nil {
		return c.Send(reply.Text, pickerMarkup(reply.Picker))
	}
	return c.Send(reply.Text, mainMenuMarkup())
}
