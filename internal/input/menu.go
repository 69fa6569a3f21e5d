package input

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MenuDetector recognizes reserved menu labels in free text
type MenuDetector struct {
	labels map[string]string
}

// NewMenuDetector builds a detector for the given labels
func NewMenuDetector(labels ...string) *MenuDetector {
	d := &MenuDetector{labels: make(map[string]string, len(labels))}
	for _, l := range labels {
		d.labels[normalizeLabel(l)] = l
	}
	return d
}

// IsMenuLabel reports whether text, once trimmed, is exactly a menu label
func (d *MenuDetector) IsMenuLabel(text string) bool {
	_, ok := d.Match(text)
	return ok
}

// Match returns the label text was registered as
func (d *MenuDetector) Match(text string) (string, bool) {
	if d == nil {
		return "", false
	}
	label, ok := d.labels[normalizeLabel(text)]
	return label, ok
}

// normalizeLabel trims and composes the text so emoji and Arabic
// combining marks typed by different clients compare equal
func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
