// Package notify selects and alerts the members an order concerns.
package notify

import "katiba/internal/domain"

// Match returns the ids of registered members who should hear about an order
// requiring the given specialties. A member matches when either side holds
// the wildcard or the two specialty sets intersect. Each id appears once.
func Match(required []domain.Specialty, members []domain.Member) []int64 {
	if len(required) == 0 {
		return nil
	}

	orderWildcard := domain.HasWildcard(required)
	seen := make(map[int64]struct{}, len(members))
	var ids []int64

	for _, m := range members {
		if !m.Registered {
			continue
		}
		if _, dup := seen[m.UserID]; dup {
			continue
		}
		if orderWildcard || domain.HasWildcard(m.Specialties) || intersects(required, m.Specialties) {
			seen[m.UserID] = struct{}{}
			ids = append(ids, m.UserID)
		}
	}
	return ids
}

func intersects(a, b []domain.Specialty) bool {
	for _, s := range a {
		if domain.ContainsSpecialty(b, s) {
			return true
		}
	}
	return false
}
