package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    string
	}{
		{"all parts", Contact{FirstName: "Ann", MiddleName: "B", Surname: "Lee"}, "Ann B Lee"},
		{"no middle name", Contact{FirstName: "Ann", Surname: "Lee"}, "Ann Lee"},
		{"extra whitespace", Contact{FirstName: " Ann ", Surname: " Lee "}, "Ann Lee"},
		{"empty", Contact{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.FullName())
		})
	}
}

func TestContactValidate(t *testing.T) {
	valid := Contact{FirstName: "Ann", Surname: "Lee", Email: "ann@example.com", Phone: "0123456789"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Contact)
	}{
		{"missing first name", func(c *Contact) { c.FirstName = "" }},
		{"missing surname", func(c *Contact) { c.Surname = "" }},
		{"missing email", func(c *Contact) { c.Email = "" }},
		{"missing phone", func(c *Contact) { c.Phone = "" }},
		{"phone too short", func(c *Contact) { c.Phone = "12345" }},
		{"phone not numeric", func(c *Contact) { c.Phone = "12345abcde" }},
		{"email without at", func(c *Contact) { c.Email = "ann.example.com" }},
		{"email without dot", func(c *Contact) { c.Email = "ann@example" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	t.Run("middle name optional", func(t *testing.T) {
		c := valid
		c.MiddleName = ""
		assert.NoError(t, c.Validate())
	})
}

func TestGenerateContactID(t *testing.T) {
	now := time.Date(2024, 5, 17, 13, 45, 9, 0, time.Local)

	assert.Equal(t, "A20240517134509", GenerateContactID("ann lee", now))
	assert.Equal(t, "20240517134509", GenerateContactID("", now))
}

func TestGenerateContactIDCollidesWithinSameSecond(t *testing.T) {
	// Same leading letter in the same second produces the same id. That is
	// the documented weak-uniqueness policy, not a bug.
	now := time.Now()
	a := GenerateContactID("Ann Lee", now)
	b := GenerateContactID("Anton Zed", now)
	assert.Equal(t, a, b)
}
