package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AwACAgUAAxkBAAIC", "AwACAgUAAxkBAAIC"},
		{"abc/def+ghi==", "abc_def_ghi__"},
		{"with space.ogg", "with_space_ogg"},
		{"keeps-dash_и_underscore", "keeps-dash___underscore"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sanitizeID(c.in), "input %q", c.in)
	}
}

func TestHelpTextNamesBothLanguages(t *testing.T) {
	got := helpText("km", "vi")
	assert.Contains(t, got, "Khmer")
	assert.Contains(t, got, "Vietnamese")

	// unknown codes fall back to the upper-cased code, never an empty slot
	got = helpText("xx", "vi")
	assert.Contains(t, got, "XX")
}
