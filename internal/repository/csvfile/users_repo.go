package csvfile

import (
	"sync"

	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/repository"
)

// The Password column holds the hex digest, never the plaintext.
var usersHeader = []string{"Username", "Password"}

type usersRepo struct {
	mu   sync.Mutex
	path string
}

func NewUsers(path string) repository.Users {
	return &usersRepo{path: path}
}

func (r *usersRepo) Load() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := readTable(r.path, len(usersHeader))
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(records))
	for _, rec := range records {
		out = append(out, models.User{Username: rec[0], PasswordHash: rec[1]})
	}
	return out, nil
}

func (r *usersRepo) Save(users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Username, u.PasswordHash})
	}
	return writeTable(r.path, usersHeader, rows)
}
