package domain

import "time"

// Flow identifies which form a session is filling
type Flow int

const (
	FlowOrder Flow = iota
	FlowRegistration
	FlowProfile
)

func (f Flow) String() string {
	switch f {
	case FlowOrder:
		return "order"
	case FlowRegistration:
		return "registration"
	case FlowProfile:
		return "profile"
	}
	return "unknown"
}

// Step is the state of the form state machine
type Step int

const (
	StepServices Step = iota
	StepClient
	StepDate
	StepLocation
	StepDetails
	StepDeposit
	StepName
	StepSpecialties
)

func (s Step) String() string {
	switch s {
	case StepServices:
		return "services"
	case StepClient:
		return "client"
	case StepDate:
		return "date"
	case StepLocation:
		return "location"
	case StepDetails:
		return "details"
	case StepDeposit:
		return "deposit"
	case StepName:
		return "name"
	case StepSpecialties:
		return "specialties"
	}
	return "unknown"
}

// IsPicker reports whether the step is answered with the specialty picker
func (s Step) IsPicker() bool {
	return s == StepServices || s == StepSpecialties
}

// Session holds one user's in-progress form
type Session struct {
	UserID    int64
	Flow      Flow
	Step      Step
	Draft     OrderDraft
	Name      string
	Selection []Specialty
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can mutate without touching stored state
func (s *Session) Clone() *Session {
	c := *s
	c.Selection = append([]Specialty(nil), s.Selection...)
	c.Draft.Specialties = append([]Specialty(nil), s.Draft.Specialties...)
	return &c
}
