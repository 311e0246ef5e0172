package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
	"github.com/jasongilchristp/xrm-by-json/internal/auth"
	"github.com/jasongilchristp/xrm-by-json/internal/config"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/query"
)

// fakeUsers keeps the table in memory with the same load-full/save-full
// contract as the CSV store.
type fakeUsers struct {
	rows    []models.User
	loadErr error
	saves   int
}

func (f *fakeUsers) Load() ([]models.User, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]models.User, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeUsers) Save(rows []models.User) error {
	f.rows = make([]models.User, len(rows))
	copy(f.rows, rows)
	f.saves++
	return nil
}

func newUserSvc(rows ...models.User) (*UserService, *fakeUsers) {
	repo := &fakeUsers{rows: rows}
	return NewUserService(repo, config.Config{AdminPassword: "bootstrap-pw"}), repo
}

func user(name, password string) models.User {
	return models.User{Username: name, PasswordHash: auth.HashPassword(password)}
}

func TestEnsureAdminBootstrapsEmptyTable(t *testing.T) {
	svc, repo := newUserSvc()

	require.NoError(t, svc.EnsureAdmin())
	require.Len(t, repo.rows, 1)
	assert.Equal(t, models.AdminUsername, repo.rows[0].Username)
	assert.Equal(t, auth.HashPassword("bootstrap-pw"), repo.rows[0].PasswordHash)

	ok, err := svc.Authenticate(models.AdminUsername, "bootstrap-pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnsureAdminLeavesExistingTableAlone(t *testing.T) {
	svc, repo := newUserSvc(user("alice", "password123"))

	require.NoError(t, svc.EnsureAdmin())
	assert.Equal(t, 0, repo.saves)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "alice", repo.rows[0].Username)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserSvc(user("alice", "password123"))

	ok, err := svc.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Authenticate("alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Authenticate("nobody", "password123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticateIsCaseSensitiveOnUsername(t *testing.T) {
	svc, _ := newUserSvc(user("Alice", "password123"))

	ok, err := svc.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateValidations(t *testing.T) {
	tests := []struct {
		name                        string
		username, password, confirm string
	}{
		{"empty username", "", "password123", "password123"},
		{"empty password", "alice", "", ""},
		{"empty confirm", "alice", "password123", ""},
		{"duplicate username", "taken", "password123", "password123"},
		{"mismatched confirm", "alice", "password123", "password124"},
		{"password too short", "alice", "seven77", "seven77"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newUserSvc(user("taken", "password123"))

			err := svc.Create(tt.username, tt.password, tt.confirm)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			// No row appended, table unchanged.
			assert.Equal(t, 0, repo.saves)
			assert.Len(t, repo.rows, 1)
		})
	}
}

func TestCreateAppendsHashedRow(t *testing.T) {
	svc, repo := newUserSvc(user("taken", "password123"))

	require.NoError(t, svc.Create("alice", "password123", "password123"))
	require.Len(t, repo.rows, 2)
	assert.Equal(t, "alice", repo.rows[1].Username)
	assert.Equal(t, auth.HashPassword("password123"), repo.rows[1].PasswordHash)
}

func TestDeleteAdminIsBlocked(t *testing.T) {
	svc, repo := newUserSvc(user("admin", "adminpw123"), user("alice", "password123"), user("bob", "password123"))

	err := svc.Delete(models.AdminUsername)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, 0, repo.saves)
	assert.Len(t, repo.rows, 3)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newUserSvc(user("admin", "adminpw123"), user("alice", "password123"))

	require.NoError(t, svc.Delete("alice"))
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "admin", repo.rows[0].Username)

	err := svc.Delete("alice")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListScopes(t *testing.T) {
	svc, _ := newUserSvc(user("admin", "adminpw123"), user("carol", "password123"), user("alice", "password123"))

	all, letters, total, err := svc.List(query.Options{Letter: query.LetterAll}, false)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"A", "C"}, letters)
	require.Len(t, all, 3)
	assert.Equal(t, "admin", all[0].Username)

	deletable, letters, total, err := svc.List(query.Options{Letter: query.LetterAll}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"A", "C"}, letters)
	require.Len(t, deletable, 2)
	assert.Equal(t, "alice", deletable[0].Username)
	assert.Equal(t, "carol", deletable[1].Username)
}

func TestListPropagatesPersistenceError(t *testing.T) {
	repo := &fakeUsers{loadErr: apperr.Persistence("read users.csv", errors.New("io"))}
	svc := NewUserService(repo, config.Config{})

	_, _, _, err := svc.List(query.Options{}, false)
	assert.ErrorIs(t, err, apperr.ErrPersistence)
}
