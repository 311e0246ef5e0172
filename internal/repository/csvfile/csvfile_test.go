package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
)

func TestContactsMissingFileIsEmptyTable(t *testing.T) {
	repo := NewContacts(filepath.Join(t.TempDir(), ContactsFile))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactsRoundTrip(t *testing.T) {
	repo := NewContacts(filepath.Join(t.TempDir(), ContactsFile))

	contacts := []models.Contact{
		{ID: "A20240517134509", FirstName: "Ann", MiddleName: "B", Surname: "Lee", Email: "ann@example.com", Phone: "0123456789"},
		{ID: "B20240517134510", FirstName: "Bob", Surname: "Zed", Email: "bob@example.com", Phone: "9876543210"},
	}
	require.NoError(t, repo.Save(contacts))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}

func TestContactsFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), ContactsFile)
	repo := NewContacts(path)

	require.NoError(t, repo.Save([]models.Contact{
		{ID: "A1", FirstName: "Ann", Surname: "Lee", Email: "ann@example.com", Phone: "0123456789"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,First Name,Middle Name,Surname,Email,Phone", lines[0])
	assert.Equal(t, "A1,Ann,,Lee,ann@example.com,0123456789", lines[1])
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	repo := NewContacts(filepath.Join(t.TempDir(), ContactsFile))

	require.NoError(t, repo.Save([]models.Contact{
		{ID: "A1", FirstName: "Ann", Surname: "Lee", Email: "a@b.c", Phone: "0123456789"},
		{ID: "B1", FirstName: "Bob", Surname: "Zed", Email: "b@b.c", Phone: "0123456789"},
	}))
	require.NoError(t, repo.Save([]models.Contact{
		{ID: "B1", FirstName: "Bob", Surname: "Zed", Email: "b@b.c", Phone: "0123456789"},
	}))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B1", got[0].ID)
}

func TestUsersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), UsersFile)
	repo := NewUsers(path)

	users := []models.User{
		{Username: "admin", PasswordHash: "8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918"},
		{Username: "alice", PasswordHash: "deadbeef"},
	}
	require.NoError(t, repo.Save(users))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, users, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Username,Password\n"))
}

func TestLoadCorruptFileIsPersistenceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), UsersFile)
	require.NoError(t, os.WriteFile(path, []byte("Username,Password\nonly-one-field\n"), 0o644))

	_, err := NewUsers(path).Load()
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}

func TestQuotedFieldsSurviveRoundTrip(t *testing.T) {
	repo := NewContacts(filepath.Join(t.TempDir(), ContactsFile))

	contacts := []models.Contact{
		{ID: "A1", FirstName: "Ann, Jr.", Surname: `Le"e`, Email: "a@b.c", Phone: "0123456789"},
	}
	require.NoError(t, repo.Save(contacts))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}
