package domain

import "time"

// Order is a client booking collected by the order form
type Order struct {
	ID                  int64
	ClientName          string
	EventDate           Date
	Location            string
	Details             string
	Deposit             int64
	RequiredSpecialties []Specialty
	Status              Status
	CreatedBy           int64
	CreatedAt           time.Time
}

// OrderDraft holds the fields collected so far by an open order session
type OrderDraft struct {
	Specialties []Specialty
	ClientName  string
	EventDate   Date
	Location    string
	Details     string
	Deposit     int64
}

// OrderSort selects the ordering of order listings
type OrderSort int

const (
	// SortNewest orders by id, newest first
	SortNewest OrderSort = iota
	// SortEventDate orders by event date, then id, ascending
	SortEventDate
)

// OrderQuery filters order listings
type OrderQuery struct {
	// From, when set, keeps only orders on or after this date
	From *Date
	// ExcludeStatuses drops orders in any of these statuses
	ExcludeStatuses []Status
	Sort            OrderSort
	Limit           int
}
