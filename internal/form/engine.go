// Package form drives the multi-step chat forms: order intake, member
// registration and specialty edits.
package form

import (
	"context"
	"time"

	"katiba/internal/domain"
	"katiba/internal/input"
	"katiba/internal/notify"
	"katiba/internal/picker"
	"katiba/internal/repository"
	"katiba/internal/session"

	"go.uber.org/zap"
)

// EventKind tells what the user did
type EventKind int

const (
	EventText EventKind = iota
	EventToggle
	EventConfirm
)

// Event is one user input fed to the engine
type Event struct {
	Kind      EventKind
	Text      string
	Specialty domain.Specialty
}

// Text wraps a chat message
func Text(s string) Event { return Event{Kind: EventText, Text: s} }

// Toggle wraps a picker button press
func Toggle(s domain.Specialty) Event { return Event{Kind: EventToggle, Specialty: s} }

// Confirm wraps the picker confirm button
func Confirm() Event { return Event{Kind: EventConfirm} }

// Reply is what the engine wants said back to the user
type Reply struct {
	Text string
	// Picker is non-nil while the session waits on the specialty picker
	Picker []picker.Option
	// Invalid marks a rejected input; the session did not move
	Invalid bool
	// Done marks the end of the session, successful or not
	Done   bool
	Order  *domain.Order
	Member *domain.Member
}

// OrderNotifier fans a new order out to matching members
type OrderNotifier interface {
	NotifyOrder(ctx context.Context, order domain.Order) (notify.Report, error)
}

// Engine is the form state machine. It keeps no state of its own besides
// the injected session store.
type Engine struct {
	sessions session.Store
	orders   repository.OrderRepository
	members  repository.MemberRepository
	notifier OrderNotifier
	picker   *picker.Picker
	menu     *input.MenuDetector
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewEngine creates a form engine. menu lists the labels that interrupt an
// open form; loc is the civil time zone used to validate event dates.
func NewEngine(
	sessions session.Store,
	orders repository.OrderRepository,
	members repository.MemberRepository,
	notifier OrderNotifier,
	menu *input.MenuDetector,
	loc *time.Location,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		sessions: sessions,
		orders:   orders,
		members:  members,
		notifier: notifier,
		picker:   picker.Default(),
		menu:     menu,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

// Picker returns the specialty picker used by the forms
func (e *Engine) Picker() *picker.Picker {
	return e.picker
}

// Active reports whether the user has an open form
func (e *Engine) Active(userID int64) bool {
	_, ok := e.sessions.Get(userID)
	return ok
}

// Cancel discards the user's open form and reports whether there was one
func (e *Engine) Cancel(userID int64) bool {
	s, ok := e.sessions.Get(userID)
	if !ok {
		return false
	}
	e.sessions.Delete(userID)
	e.logger.Info("Form cancelled",
		zap.Int64("user_id", userID),
		zap.Stringer("flow", s.Flow),
		zap.Stringer("step", s.Step),
	)
	return true
}

// StartOrder opens a new order form, replacing any open one
func (e *Engine) StartOrder(userID int64) Reply {
	s := &domain.Session{UserID: userID, Flow: domain.FlowOrder, Step: domain.StepServices}
	e.sessions.Set(s)
	e.logger.Info("Order form started", zap.Int64("user_id", userID))
	return e.pickerReply(s, promptServices)
}

// StartRegistration opens the registration form
func (e *Engine) StartRegistration(userID int64) Reply {
	s := &domain.Session{UserID: userID, Flow: domain.FlowRegistration, Step: domain.StepName}
	e.sessions.Set(s)
	e.logger.Info("Registration form started", zap.Int64("user_id", userID))
	return Reply{Text: promptName}
}

// StartProfileEdit opens the specialty picker pre-filled with the member's
// current specialties. Members who never registered are sent to registration.
func (e *Engine) StartProfileEdit(ctx context.Context, userID int64) Reply {
	member, err := e.members.GetMember(ctx, userID)
	if err != nil {
		e.logger.Error("Failed to load member", zap.Int64("user_id", userID), zap.Error(err))
		return Reply{Text: msgLoadFailed, Done: true}
	}
	if member == nil || !member.Registered {
		return e.StartRegistration(userID)
	}

	s := &domain.Session{
		UserID:    userID,
		Flow:      domain.FlowProfile,
		Step:      domain.StepSpecialties,
		Name:      member.DisplayName,
		Selection: member.Specialties,
	}
	e.sessions.Set(s)
	e.logger.Info("Profile edit started", zap.Int64("user_id", userID))
	return e.pickerReply(s, promptMySpecialties)
}

// Handle feeds one event to the user's open form. The bool result is false
// when the engine did not consume the event: there is no open form, or the
// text is a menu label, in which case the form is discarded and the caller
// should run the menu action.
func (e *Engine) Handle(ctx context.Context, userID int64, ev Event) (Reply, bool) {
	s, ok := e.sessions.Get(userID)
	if !ok {
		return Reply{}, false
	}

	if ev.Kind == EventText && e.menu.IsMenuLabel(ev.Text) {
		e.sessions.Delete(userID)
		e.logger.Info("Form interrupted by menu",
			zap.Int64("user_id", userID),
			zap.Stringer("flow", s.Flow),
			zap.Stringer("step", s.Step),
		)
		return Reply{}, false
	}

	if s.Step.IsPicker() {
		return e.handlePicker(ctx, s, ev), true
	}
	if ev.Kind != EventText {
		return e.invalid(s, msgStaleButton), true
	}
	return e.handleText(ctx, s, ev.Text), true
}

func (e *Engine) pickerReply(s *domain.Session, text string) Reply {
	return Reply{Text: text, Picker: e.picker.Render(s.Selection)}
}

// invalid re-prompts the current step without touching the session
func (e *Engine) invalid(s *domain.Session, msg string) Reply {
	text := msg + "\n\n" + prompt(s.Step)
	if s.Step.IsPicker() {
		r := e.pickerReply(s, text)
		r.Invalid = true
		return r
	}
	return Reply{Text: text, Invalid: true}
}

// advance stores s at its next step and asks the step's question
func (e *Engine) advance(s *domain.Session, next domain.Step) Reply {
	s.Step = next
	e.sessions.Set(s)
	if next.IsPicker() {
		return e.pickerReply(s, prompt(next))
	}
	return Reply{Text: prompt(next)}
}
