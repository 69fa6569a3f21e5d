package handler

import (
	"strconv"
	"strings"
	"unicode"

	"katiba/internal/form"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallbackData splits "unique|payload" data sent without a Unique
func splitCallbackData(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(data, "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The same picker state was already rendered by an earlier tap
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that were not routed by Unique
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if callback.Unique == "" {
		unique, payload := splitCallbackData(data)
		switch unique {
		case btnSpecToggle.Unique:
			return h.toggleSpecialty(c, payload)
		case btnSpecConfirm.Unique:
			return h.handleSpecConfirm(c)
		case btnOrder.Unique:
			return h.showOrder(c, payload)
		}
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleSpecToggle flips one specialty in the open picker
func (h *Handler) handleSpecToggle(c tele.Context) error {
	return h.toggleSpecialty(c, cleanCallbackData(c.Callback().Data))
}

func (h *Handler) toggleSpecialty(c tele.Context, data string) error {
	idx, err := strconv.Atoi(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgStaleButton})
	}
	spec, ok := h.engine.Picker().At(idx)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: msgStaleButton})
	}
	return h.feedPicker(c, form.Toggle(spec))
}

// handleSpecConfirm commits the open picker selection
func (h *Handler) handleSpecConfirm(c tele.Context) error {
	return h.feedPicker(c, form.Confirm())
}

func (h *Handler) feedPicker(c tele.Context, ev form.Event) error {
	userID := c.Sender().ID

	ctx, cancel := requestContext()
	defer cancel()

	reply, consumed := h.engine.Handle(ctx, userID, ev)
	if !consumed {
		return c.Respond(&tele.CallbackResponse{Text: msgNoForm, ShowAlert: true})
	}
	return h.editReply(c, reply)
}

// editReply renders an engine reply in place of the picker message. Once the
// picker is gone the reply is sent as a new message so the menu keyboard
// comes back.
func (h *Handler) editReply(c tele.Context, reply form.Reply) error {
	userID := c.Sender().ID

	if reply.Picker != nil {
		if err := c.Edit(reply.Text, pickerMarkup(reply.Picker)); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already up to date, just acknowledged
			}
			return c.Send(reply.Text, pickerMarkup(reply.Picker))
		}
		return c.Respond()
	}

	// Drop the inline keyboard from the picker message
	if msg := c.Message(); msg != nil {
		if err := c.Edit(msg.Text); err != nil {
			h.logger.Debug("Failed to close picker message", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.sendReply(c, reply)
}
