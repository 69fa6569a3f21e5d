package service

import (
	"context"
	"strings"

	"katiba/internal/domain"
	"katiba/internal/repository"
)

// MemberService handles team member lookups
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// EnsureMember creates the member record on first contact
func (s *MemberService) EnsureMember(ctx context.Context, userID int64, displayName string) error {
	return s.memberRepo.EnsureMember(ctx, userID, strings.TrimSpace(displayName))
}

// GetMember returns the member or nil if unknown
func (s *MemberService) GetMember(ctx context.Context, userID int64) (*domain.Member, error) {
	return s.memberRepo.GetMember(ctx, userID)
}

// IsRegistered reports whether the user finished registration
func (s *MemberService) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	m, err := s.memberRepo.GetMember(ctx, userID)
	if err != nil {
		return false, err
	}
	return m != nil && m.Registered, nil
}
