// Package query implements the shared list pipeline: sort, substring search
// and first-letter filtering over the contact and user tables. Both entity
// kinds go through the same generic core, parameterized by sort key,
// searchable columns and the primary name field.
package query

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/jasongilchristp/xrm-by-json/internal/models"
)

// LetterAll is the sentinel meaning "no letter filter".
const LetterAll = "All"

// Options carries the raw filter inputs as the UI supplies them.
type Options struct {
	// Search is a case-insensitive substring matched against every
	// searchable column. Empty means no search filter.
	Search string
	// Letter restricts rows to those whose first letter equals it, unless it
	// is LetterAll (or empty, treated the same).
	Letter string
}

// FirstLetter returns the uppercased first rune of s, or "" when s is empty.
// Rows with an empty primary name field have no first letter: they are
// excluded from the letter options but still listed when no filter applies.
func FirstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// Contacts sorts rows by (first name, middle name, surname), case-sensitive
// ascending, then applies the search and letter filters. The result keeps
// the sort order; filtering never re-sorts.
func Contacts(rows []models.Contact, opt Options) []models.Contact {
	return run(rows, opt,
		compareContacts,
		func(c models.Contact) []string { return []string{c.FullName(), c.Email, c.Phone} },
		func(c models.Contact) string { return c.FirstName },
	)
}

// Users sorts rows by username ascending and applies the filters. The only
// searchable column is the username.
func Users(rows []models.User, opt Options) []models.User {
	return run(rows, opt,
		compareUsers,
		func(u models.User) []string { return []string{u.Username} },
		func(u models.User) string { return u.Username },
	)
}

// ContactLetters returns the sorted distinct letter-filter options for rows.
func ContactLetters(rows []models.Contact) []string {
	return letters(rows, func(c models.Contact) string { return c.FirstName })
}

// UserLetters returns the sorted distinct letter-filter options for rows.
func UserLetters(rows []models.User) []string {
	return letters(rows, func(u models.User) string { return u.Username })
}

func compareContacts(a, b models.Contact) int {
	if c := cmp.Compare(a.FirstName, b.FirstName); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MiddleName, b.MiddleName); c != 0 {
		return c
	}
	return cmp.Compare(a.Surname, b.Surname)
}

func compareUsers(a, b models.User) int {
	return cmp.Compare(a.Username, b.Username)
}

func run[T any](rows []T, opt Options, compare func(a, b T) int, columns func(T) []string, nameField func(T) string) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	slices.SortStableFunc(out, compare)

	if term := strings.ToLower(opt.Search); term != "" {
		out = slices.DeleteFunc(out, func(row T) bool {
			for _, col := range columns(row) {
				if strings.Contains(strings.ToLower(col), term) {
					return false
				}
			}
			return true
		})
	}

	if opt.Letter != "" && opt.Letter != LetterAll {
		want := strings.ToUpper(opt.Letter)
		out = slices.DeleteFunc(out, func(row T) bool {
			return FirstLetter(nameField(row)) != want
		})
	}
	return out
}

func letters[T any](rows []T, nameField func(T) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		l := FirstLetter(nameField(row))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}
