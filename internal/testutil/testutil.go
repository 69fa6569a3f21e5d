package testutil

import (
	"time"

	"katiba/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestMember creates a registered test member
func NewTestMember(userID int64, name string, specialties ...domain.Specialty) domain.Member {
	return domain.Member{
		UserID:      userID,
		DisplayName: name,
		Specialties: specialties,
		Registered:  len(specialties) > 0,
		CreatedAt:   time.Now(),
	}
}

// NewTestOrder creates a pending test order
func NewTestOrder(id int64, client string, date domain.Date, specialties ...domain.Specialty) domain.Order {
	return domain.Order{
		ID:                  id,
		ClientName:          client,
		EventDate:           date,
		Location:            "Cairo Hall",
		Details:             "wedding",
		Deposit:             500,
		RequiredSpecialties: specialties,
		Status:              domain.StatusPending,
		CreatedBy:           1,
		CreatedAt:           time.Now(),
	}
}

// Date builds a domain date
func Date(year int, month time.Month, day int) domain.Date {
	return domain.Date{Year: year, Month: month, Day: day}
}
