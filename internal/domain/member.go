package domain

import "time"

// Member is a team member known to the bot
type Member struct {
	UserID      int64
	DisplayName string
	Specialties []Specialty
	Registered  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
