package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborlane/freightflow-go/internal/domain/location"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain city", "Shanghai", "shanghai"},
		{"leading port of", "Port of Shanghai", "shanghai"},
		{"leading port", "Port Klang", "klang"},
		{"trailing harbour", "Hamburg Harbour", "hamburg"},
		{"trailing terminal", "Felixstowe Terminal", "felixstowe"},
		{"leading and trailing", "New York City", "york"},
		{"internal whitespace removed", "Los   Angeles", "losangeles"},
		{"ennore qualifier", "Ennore Chennai", "chennai"},
		{"mixed case and padding", "  GREATER Mumbai  ", "mumbai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, location.Normalize(tt.input))
		})
	}
}

func TestSameLocation(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"port prefix variant", "Port of Shanghai", "Shanghai", true},
		{"identical", "Shanghai", "Shanghai", true},
		{"distinct ports", "Shanghai", "Ningbo", false},
		{"substring containment", "Navi Mumbai", "Mumbai", true},
		{"case insensitive", "HAMBURG", "hamburg", true},
		{"suffix variant", "Chennai Port", "Chennai", true},
		{"unrelated", "Rotterdam", "Antwerp", false},
		{"qualifier-only equal", "Port", "Port", true},
		{"qualifier-only vs city", "Port", "Shanghai", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, location.SameLocation(tt.a, tt.b))
		})
	}
}
