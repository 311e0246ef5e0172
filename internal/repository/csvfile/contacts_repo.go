package csvfile

import (
	"sync"

	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/repository"
)

// contactsHeader is the on-disk column order. Save preserves it exactly.
var contactsHeader = []string{"ID", "First Name", "Middle Name", "Surname", "Email", "Phone"}

type contactsRepo struct {
	mu   sync.Mutex
	path string
}

func NewContacts(path string) repository.Contacts {
	return &contactsRepo{path: path}
}

func (r *contactsRepo) Load() ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := readTable(r.path, len(contactsHeader))
	if err != nil {
		return nil, err
	}
	out := make([]models.Contact, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Contact{
			ID:         rec[0],
			FirstName:  rec[1],
			MiddleName: rec[2],
			Surname:    rec[3],
			Email:      rec[4],
			Phone:      rec[5],
		})
	}
	return out, nil
}

func (r *contactsRepo) Save(contacts []models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.ID, c.FirstName, c.MiddleName, c.Surname, c.Email, c.Phone})
	}
	return writeTable(r.path, contactsHeader, rows)
}
