package csvfile

import (
	"path/filepath"

	repo "github.com/jasongilchristp/xrm-by-json/internal/repository"
)

const (
	ContactsFile = "contacts.csv"
	UsersFile    = "users.csv"
)

type Repositories struct {
	Contacts repo.Contacts
	Users    repo.Users
}

func NewRepositories(dataDir string) Repositories {
	return Repositories{
		Contacts: NewContacts(filepath.Join(dataDir, ContactsFile)),
		Users:    NewUsers(filepath.Join(dataDir, UsersFile)),
	}
}
