package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
)

type Contact struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// FullName joins the name parts with single spaces, dropping empty parts
// and extra whitespace.
func (c Contact) FullName() string {
	return strings.Join(strings.Fields(c.FirstName+" "+c.MiddleName+" "+c.Surname), " ")
}

// Validate enforces the creation/edit rules. Existing rows are never
// re-checked against these, so malformed legacy rows can survive in the file.
func (c *Contact) Validate() error {
	if c.FirstName == "" || c.Surname == "" || c.Email == "" || c.Phone == "" {
		return apperr.Validationf("please fill in all fields")
	}
	if len(c.Phone) != 10 || !isDigits(c.Phone) {
		return apperr.Validationf("phone number must be 10 digits and numeric")
	}
	if !strings.Contains(c.Email, "@") || !strings.Contains(c.Email, ".") {
		return apperr.Validationf("invalid email format")
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GenerateContactID builds a contact id from the uppercased first letter of
// the name plus a second-resolution timestamp. Two contacts created with the
// same leading letter within the same second get the same id; collisions are
// accepted and not detected.
func GenerateContactID(name string, now time.Time) string {
	prefix := ""
	for _, r := range name {
		prefix = string(unicode.ToUpper(r))
		break
	}
	return prefix + now.Format("20060102150405")
}
