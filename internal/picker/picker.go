// Package picker implements the toggle-set specialty picker shared by the
// registration, profile and order forms.
package picker

import (
	"errors"
	"fmt"

	"katiba/internal/domain"
)

// ErrEmptySelection is returned when confirming with nothing selected
var ErrEmptySelection = errors.New("no specialty selected")

// Option is one rendered entry of the picker
type Option struct {
	Specialty domain.Specialty
	Selected  bool
}

// Picker toggles specialties from an ordered catalog plus a wildcard tag.
// Selections are plain slices; the picker never mutates its inputs.
type Picker struct {
	catalog  []domain.Specialty
	wildcard domain.Specialty
}

// New creates a picker over catalog. wildcard must not appear in catalog.
func New(catalog []domain.Specialty, wildcard domain.Specialty) *Picker {
	return &Picker{
		catalog:  append([]domain.Specialty(nil), catalog...),
		wildcard: wildcard,
	}
}

// Default returns the picker over the business specialty catalog
func Default() *Picker {
	return New(domain.Catalog, domain.SpecialtyAll)
}

// Specialties returns every selectable tag in display order, wildcard last
func (p *Picker) Specialties() []domain.Specialty {
	out := make([]domain.Specialty, 0, len(p.catalog)+1)
	out = append(out, p.catalog...)
	return append(out, p.wildcard)
}

// At returns the selectable tag at display index i
func (p *Picker) At(i int) (domain.Specialty, bool) {
	all := p.Specialties()
	if i < 0 || i >= len(all) {
		return "", false
	}
	return all[i], true
}

// Toggle flips tag in selection and returns the new selection.
// Selecting the wildcard clears everything else; selecting any other tag
// drops the wildcard.
func (p *Picker) Toggle(selection []domain.Specialty, tag domain.Specialty) ([]domain.Specialty, error) {
	if !p.known(tag) {
		return selection, fmt.Errorf("%w: %q", domain.ErrUnknownSpecialty, tag)
	}

	set := p.toSet(selection)

	if tag == p.wildcard {
		if _, on := set[p.wildcard]; on {
			return []domain.Specialty{}, nil
		}
		return []domain.Specialty{p.wildcard}, nil
	}

	delete(set, p.wildcard)
	if _, on := set[tag]; on {
		delete(set, tag)
	} else {
		set[tag] = struct{}{}
	}
	return p.ordered(set), nil
}

// Confirm validates the working selection and returns it as the committed set
func (p *Picker) Confirm(selection []domain.Specialty) ([]domain.Specialty, error) {
	set := p.toSet(selection)
	if len(set) == 0 {
		return nil, ErrEmptySelection
	}
	return p.ordered(set), nil
}

// Render returns the picker entries with their selection flags
func (p *Picker) Render(selection []domain.Specialty) []Option {
	set := p.toSet(selection)
	all := p.Specialties()
	options := make([]Option, len(all))
	for i, s := range all {
		_, on := set[s]
		options[i] = Option{Specialty: s, Selected: on}
	}
	return options
}

func (p *Picker) known(tag domain.Specialty) bool {
	if tag == p.wildcard {
		return true
	}
	return domain.ContainsSpecialty(p.catalog, tag)
}

// toSet keeps only known tags, so stale stored values never leak into a commit
func (p *Picker) toSet(selection []domain.Specialty) map[domain.Specialty]struct{} {
	set := make(map[domain.Specialty]struct{}, len(selection))
	for _, s := range selection {
		if p.known(s) {
			set[s] = struct{}{}
		}
	}
	if _, on := set[p.wildcard]; on && len(set) > 1 {
		return map[domain.Specialty]struct{}{p.wildcard: {}}
	}
	return set
}

func (p *Picker) ordered(set map[domain.Specialty]struct{}) []domain.Specialty {
	out := make([]domain.Specialty, 0, len(set))
	for _, s := range p.Specialties() {
		if _, on := set[s]; on {
			out = append(out, s)
		}
	}
	return out
}
