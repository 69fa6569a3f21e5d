// Package session keeps the in-progress forms of chat users.
package session

import "katiba/internal/domain"

// Store holds at most one open session per user
type Store interface {
	Get(userID int64) (*domain.Session, bool)
	Set(s *domain.Session)
	Delete(userID int64)
}
