package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_FirstErrorWins(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())
	assert.Equal(t, "", v.First())

	v.Check(false, "titulo", "first")
	v.Check(false, "titulo", "second")
	v.Check(true, "autor", "never")
	v.Check(false, "isbn", "third")

	assert.False(t, v.Valid())
	assert.Equal(t, "first", v.Errors["titulo"])
	assert.NotContains(t, v.Errors, "autor")
	assert.Equal(t, "first", v.First())
}

func TestNotBlank(t *testing.T) {
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   \t"))
	assert.True(t, NotBlank(" a "))
}

func TestEmailRX(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"a.b+c@sub.example.org", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"two words@example.com", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.email, EmailRX))
		})
	}
}
