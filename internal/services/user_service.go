package services

import (
	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
	"github.com/jasongilchristp/xrm-by-json/internal/auth"
	"github.com/jasongilchristp/xrm-by-json/internal/config"
	"github.com/jasongilchristp/xrm-by-json/internal/metrics"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/query"
	repo "github.com/jasongilchristp/xrm-by-json/internal/repository"
)

const minPasswordLen = 8

type UserService struct {
	r repo.Users
	c config.Config
}

func NewUserService(r repo.Users, c config.Config) *UserService { return &UserService{r: r, c: c} }

// EnsureAdmin bootstraps the users table: when it is empty, the admin
// account is created with the configured default password and persisted
// immediately.
func (s *UserService) EnsureAdmin() error {
	users, err := s.r.Load()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		metrics.RecordsTotal.WithLabelValues("users").Set(float64(len(users)))
		return nil
	}
	users = []models.User{{
		Username:     models.AdminUsername,
		PasswordHash: auth.HashPassword(s.c.AdminPassword),
	}}
	if err := s.r.Save(users); err != nil {
		return err
	}
	metrics.RecordsTotal.WithLabelValues("users").Set(1)
	return nil
}

// Authenticate reports whether username exists and the password digest
// matches its stored hash.
func (s *UserService) Authenticate(username, password string) (bool, error) {
	users, err := s.r.Load()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username {
			return auth.VerifyPassword(password, u.PasswordHash), nil
		}
	}
	return false, nil
}

// Create appends a new account. Used by both self-signup and the admin
// add-user form; the rules are identical.
func (s *UserService) Create(username, password, confirm string) error {
	if username == "" || password == "" || confirm == "" {
		return apperr.Validationf("all fields are required")
	}
	users, err := s.r.Load()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == username {
			return apperr.Validationf("username already exists")
		}
	}
	if password != confirm {
		return apperr.Validationf("passwords do not match")
	}
	if len(password) < minPasswordLen {
		return apperr.Validationf("password must be at least %d characters", minPasswordLen)
	}
	users = append(users, models.User{Username: username, PasswordHash: auth.HashPassword(password)})
	if err := s.r.Save(users); err != nil {
		return err
	}
	metrics.RecordsTotal.WithLabelValues("users").Set(float64(len(users)))
	return nil
}

// List runs the query pipeline over the users table. deletableOnly mirrors
// the delete view: the admin row is removed before the pipeline, so it is
// absent from both the rows and the letter options.
func (s *UserService) List(opt query.Options, deletableOnly bool) ([]models.User, []string, int, error) {
	users, err := s.r.Load()
	if err != nil {
		return nil, nil, 0, err
	}
	if deletableOnly {
		kept := users[:0:0]
		for _, u := range users {
			if !u.IsAdmin() {
				kept = append(kept, u)
			}
		}
		users = kept
	}
	return query.Users(users, opt), query.UserLetters(users), len(users), nil
}

// Delete removes the account with the given username. The admin account is
// exempt from deletion.
func (s *UserService) Delete(username string) error {
	if username == models.AdminUsername {
		return apperr.Validationf("the admin account cannot be deleted")
	}
	users, err := s.r.Load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		users = append(users[:i], users[i+1:]...)
		if err := s.r.Save(users); err != nil {
			return err
		}
		metrics.RecordsTotal.WithLabelValues("users").Set(float64(len(users)))
		return nil
	}
	return apperr.NotFoundf("user %s", username)
}
