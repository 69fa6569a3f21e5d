package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"katiba/internal/domain"
	"katiba/internal/format"
	"katiba/internal/input"
	"katiba/internal/picker"

	"go.uber.org/zap"
)

func (e *Engine) handlePicker(ctx context.Context, s *domain.Session, ev Event) Reply {
	switch ev.Kind {
	case EventToggle:
		selection, err := e.picker.Toggle(s.Selection, ev.Specialty)
		if err != nil {
			e.logger.Warn("Rejected picker toggle",
				zap.Int64("user_id", s.UserID),
				zap.String("specialty", string(ev.Specialty)),
				zap.Error(err),
			)
			return e.invalid(s, msgStaleButton)
		}
		s.Selection = selection
		e.sessions.Set(s)
		return e.pickerReply(s, prompt(s.Step))

	case EventConfirm:
		committed, err := e.picker.Confirm(s.Selection)
		if errors.Is(err, picker.ErrEmptySelection) {
			return e.invalid(s, msgEmptySelection)
		}
		if err != nil {
			return e.invalid(s, msgStaleButton)
		}
		return e.commitSpecialties(ctx, s, committed)

	default:
		return e.invalid(s, msgUseButtons)
	}
}

func (e *Engine) commitSpecialties(ctx context.Context, s *domain.Session, committed []domain.Specialty) Reply {
	s.Selection = nil

	switch s.Flow {
	case domain.FlowOrder:
		s.Draft.Specialties = committed
		return e.advance(s, domain.StepClient)
	case domain.FlowRegistration:
		return e.finalizeRegistration(ctx, s, committed)
	case domain.FlowProfile:
		return e.finalizeProfile(ctx, s, committed)
	}

	e.sessions.Delete(s.UserID)
	return Reply{Text: msgLoadFailed, Done: true}
}

func (e *Engine) handleText(ctx context.Context, s *domain.Session, raw string) Reply {
	text := strings.TrimSpace(raw)
	if text == "" {
		return e.invalid(s, msgEmptyText)
	}

	switch s.Step {
	case domain.StepClient:
		s.Draft.ClientName = text
		return e.advance(s, domain.StepDate)

	case domain.StepDate:
		date, ok := input.ParseDate(text, e.loc)
		if !ok {
			return Reply{Text: msgBadDate, Invalid: true}
		}
		s.Draft.EventDate = date
		return e.advance(s, domain.StepLocation)

	case domain.StepLocation:
		s.Draft.Location = text
		return e.advance(s, domain.StepDetails)

	case domain.StepDetails:
		s.Draft.Details = text
		return e.advance(s, domain.StepDeposit)

	case domain.StepDeposit:
		deposit, ok := input.ParseInt(text)
		if !ok || deposit < 0 {
			return Reply{Text: msgBadDeposit, Invalid: true}
		}
		s.Draft.Deposit = deposit
		return e.finalizeOrder(ctx, s)

	case domain.StepName:
		s.Name = text
		return e.advance(s, domain.StepSpecialties)
	}

	return e.invalid(s, msgUseButtons)
}

// finalizeOrder persists the order and notifies matching members. The
// session ends here whether or not the insert succeeds.
func (e *Engine) finalizeOrder(ctx context.Context, s *domain.Session) Reply {
	e.sessions.Delete(s.UserID)

	order := domain.Order{
		ClientName:          s.Draft.ClientName,
		EventDate:           s.Draft.EventDate,
		Location:            s.Draft.Location,
		Details:             s.Draft.Details,
		Deposit:             s.Draft.Deposit,
		RequiredSpecialties: s.Draft.Specialties,
		Status:              domain.StatusPending,
		CreatedBy:           s.UserID,
		CreatedAt:           e.now(),
	}

	id, err := e.orders.CreateOrder(ctx, order)
	if err != nil {
		e.logger.Error("Failed to save order",
			zap.Int64("user_id", s.UserID),
			zap.Error(err),
		)
		return Reply{Text: msgOrderSaveFailed, Done: true}
	}
	order.ID = id

	e.logger.Info("Order created",
		zap.Int64("order_id", id),
		zap.Int64("user_id", s.UserID),
		zap.String("event_date", order.EventDate.String()),
		zap.Strings("specialties", domain.SpecialtyStrings(order.RequiredSpecialties)),
	)

	if e.notifier != nil {
		if _, err := e.notifier.NotifyOrder(ctx, order); err != nil {
			e.logger.Error("Failed to notify members",
				zap.Int64("order_id", id),
				zap.Error(err),
			)
		}
	}

	return Reply{Text: format.OrderCreated(order), Done: true, Order: &order}
}

func (e *Engine) finalizeRegistration(ctx context.Context, s *domain.Session, specialties []domain.Specialty) Reply {
	e.sessions.Delete(s.UserID)

	if err := e.members.RegisterMember(ctx, s.UserID, s.Name, specialties); err != nil {
		e.logger.Error("Failed to register member", zap.Int64("user_id", s.UserID), zap.Error(err))
		return Reply{Text: msgMemberSaveFailed, Done: true}
	}

	member := domain.Member{
		UserID:      s.UserID,
		DisplayName: s.Name,
		Specialties: specialties,
		Registered:  true,
	}
	e.logger.Info("Member registered",
		zap.Int64("user_id", s.UserID),
		zap.Strings("specialties", domain.SpecialtyStrings(specialties)),
	)

	return Reply{
		Text:   fmt.Sprintf(msgRegistered, s.Name, domain.JoinSpecialties(specialties)),
		Done:   true,
		Member: &member,
	}
}

func (e *Engine) finalizeProfile(ctx context.Context, s *domain.Session, specialties []domain.Specialty) Reply {
	e.sessions.Delete(s.UserID)

	if err := e.members.SetMemberSpecialties(ctx, s.UserID, specialties); err != nil {
		e.logger.Error("Failed to update member specialties", zap.Int64("user_id", s.UserID), zap.Error(err))
		return Reply{Text: msgMemberSaveFailed, Done: true}
	}

	member := domain.Member{
		UserID:      s.UserID,
		DisplayName: s.Name,
		Specialties: specialties,
		Registered:  true,
	}
	e.logger.Info("Member specialties updated",
		zap.Int64("user_id", s.UserID),
		zap.Strings("specialties", domain.SpecialtyStrings(specialties)),
	)

	return Reply{
		Text:   fmt.Sprintf(msgSpecialtiesSaved, domain.JoinSpecialties(specialties)),
		Done:   true,
		Member: &member,
	}
}
