package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ctx, cancel := requestContext()
	defer cancel()

	registered, err := h.memberService.IsRegistered(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check registration", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgError, mainMenuMarkup())
	}

	if err := c.Send(msgHelp, mainMenuMarkup()); err != nil {
		return err
	}
	// An open form is never replaced; /register is still there for it
	if registered || h.engine.Active(userID) {
		return nil
	}

	// Unregistered members go straight into registration
	return h.sendReply(c, h.engine.StartRegistration(userID))
}

// handleRegister handles /register command
func (h *Handler) handleRegister(c tele.Context) error {
	return h.sendReply(c, h.engine.StartRegistration(c.Sender().ID))
}

// handleCancel handles /cancel command
func (h *Handler) handleCancel(c tele.Context) error {
	if !h.engine.Cancel(c.Sender().ID) {
		return c.Send(msgNothingOpen, mainMenuMarkup())
	}
	return c.Send(msgCancelled, mainMenuMarkup())
}

// handleHelp shows the help text with the menu
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgHelp, mainMenuMarkup())
}

// handleID replies with the sender's Telegram id
func (h *Handler) handleID(c tele.Context) error {
	return c.Send(fmt.Sprintf(msgTelegramID, c.Sender().ID), mainMenuMarkup())
}
