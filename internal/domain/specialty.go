package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSpecialty is returned when a tag is not part of the catalog
var ErrUnknownSpecialty = errors.New("unknown specialty")

// Specialty is a service tag a member can cover and an order can require
type Specialty string

const (
	SpecialtyDJ       Specialty = "دي جي"
	SpecialtyLaser    Specialty = "ليز"
	SpecialtyScreens  Specialty = "شاشات"
	SpecialtyPhoto    Specialty = "تصوير"
	SpecialtyLighting Specialty = "إضاءة"
	SpecialtyAll      Specialty = "الكل" // wildcard, applies to every specialty
)

// Catalog is the ordered list of concrete specialties (wildcard excluded)
var Catalog = []Specialty{
	SpecialtyDJ,
	SpecialtyLaser,
	SpecialtyScreens,
	SpecialtyPhoto,
	SpecialtyLighting,
}

// IsWildcard reports whether s means "applies to all"
func (s Specialty) IsWildcard() bool {
	return s == SpecialtyAll
}

// ParseSpecialty maps a stored or received tag onto the catalog
func ParseSpecialty(raw string) (Specialty, error) {
	s := Specialty(strings.TrimSpace(raw))
	if s.IsWildcard() {
		return s, nil
	}
	for _, c := range Catalog {
		if c == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSpecialty, raw)
}

// ParseSpecialties parses every tag, failing on the first unknown one
func ParseSpecialties(raw []string) ([]Specialty, error) {
	out := make([]Specialty, 0, len(raw))
	for _, r := range raw {
		s, err := ParseSpecialty(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// SpecialtyStrings converts specialties back to plain strings for storage
func SpecialtyStrings(specs []Specialty) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = string(s)
	}
	return out
}

// ContainsSpecialty reports whether s is present in specs
func ContainsSpecialty(specs []Specialty, s Specialty) bool {
	for _, v := range specs {
		if v == s {
			return true
		}
	}
	return false
}

// HasWildcard reports whether specs holds the wildcard tag
func HasWildcard(specs []Specialty) bool {
	return ContainsSpecialty(specs, SpecialtyAll)
}

// JoinSpecialties renders specs for chat messages
func JoinSpecialties(specs []Specialty) string {
	if len(specs) == 0 {
		return "-"
	}
	return strings.Join(SpecialtyStrings(specs), "، ")
}
