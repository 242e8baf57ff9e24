package assetrange_test

import (
	"labdesk/shared/assetrange"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []int{},
		},
		{
			name:     "single number",
			input:    "12",
			expected: []int{12},
		},
		{
			name:     "simple range",
			input:    "12-15",
			expected: []int{12, 13, 14, 15},
		},
		{
			name:     "range and single",
			input:    "12-15, 20",
			expected: []int{12, 13, 14, 15, 20},
		},
		{
			name:     "prefixed token",
			input:    "dept/004",
			expected: []int{4},
		},
		{
			name:     "mixed tokens with whitespace",
			input:    " 1-3 ,dept/7, 10 ",
			expected: []int{1, 2, 3, 7, 10},
		},
		{
			name:     "malformed tokens are skipped",
			input:    "abc, 5, 9-x, 8-3",
			expected: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assetrange.Parse(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected string
	}{
		{
			name:     "empty slice",
			input:    []int{},
			expected: "",
		},
		{
			name:     "single id",
			input:    []int{7},
			expected: "7",
		},
		{
			name:     "consecutive run collapses",
			input:    []int{12, 13, 14, 15},
			expected: "12-15",
		},
		{
			name:     "run and gap",
			input:    []int{12, 13, 14, 15, 20},
			expected: "12-15, 20",
		},
		{
			name:     "multiple runs",
			input:    []int{1, 2, 4, 5, 9},
			expected: "1-2, 4-5, 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assetrange.Format(tt.input))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	input := "12-15, 20, 31-33"
	assert.Equal(t, input, assetrange.Format(assetrange.Parse(input)))
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		fragment string
		expected string
	}{
		{
			name:     "both empty",
			existing: "",
			fragment: "",
			expected: "",
		},
		{
			name:     "empty existing",
			existing: "",
			fragment: "12-15",
			expected: "12-15",
		},
		{
			name:     "empty fragment",
			existing: "12-15",
			fragment: "",
			expected: "12-15",
		},
		{
			name:     "both populated",
			existing: "12-15",
			fragment: "20-22",
			expected: "12-15, 20-22",
		},
		{
			name:     "overlap stays as written",
			existing: "12-15",
			fragment: "14-16",
			expected: "12-15, 14-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assetrange.Append(tt.existing, tt.fragment))
		})
	}
}
