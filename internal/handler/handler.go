package handler

import (
	"context"
	"time"

	"katiba/internal/form"
	"katiba/internal/input"
	"katiba/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Main menu labels. They double as reserved words that interrupt an open form.
const (
	LabelNewOrder      = "➕ إضافة أوردر جديد"
	LabelRecentOrders  = "📋 الأوردرات المسجلة"
	LabelBookedOrders  = "📌 الأوردرات المحجوزة"
	LabelMySpecialties = "🛠 تخصصاتي"
	LabelHelp          = "ℹ️ مساعدة"
)

// MenuLabels returns the main menu labels in keyboard order
func MenuLabels() []string {
	return []string{LabelNewOrder, LabelRecentOrders, LabelBookedOrders, LabelMySpecialties, LabelHelp}
}

const requestTimeout = 15 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot           *tele.Bot
	engine        *form.Engine
	orderService  *service.OrderService
	memberService *service.MemberService
	menu          *input.MenuDetector
	loc           *time.Location
	logger        *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	engine *form.Engine,
	orderService *service.OrderService,
	memberService *service.MemberService,
	menu *input.MenuDetector,
	loc *time.Location,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		engine:        engine,
		orderService:  orderService,
		memberService: memberService,
		menu:          menu,
		loc:           loc,
		logger:        logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/register", h.handleRegister)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/help", h.handleHelp)

	// Text messages: form input and the reply-keyboard menu
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnSpecToggle, h.handleSpecToggle)
	h.bot.Handle(&btnSpecConfirm, h.handleSpecConfirm)
	h.bot.Handle(&btnOrder, h.handleOrderDetails)

	// Generic callback handler for buttons whose Unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// requestContext bounds the storage work done for one update
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
