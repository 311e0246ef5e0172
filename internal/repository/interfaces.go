package repository

import "github.com/jasongilchristp/xrm-by-json/internal/models"

// The persistence contract is load-full, mutate in memory, save-full. There
// is no partial-row update primitive. Save is a whole-file overwrite, so two
// writers racing on the same table lose one of the updates (last writer
// wins) — a documented limitation of the flat-file store, not a bug.

type Contacts interface {
	Load() ([]models.Contact, error)
	Save([]models.Contact) error
}

type Users interface {
	Load() ([]models.User, error)
	Save([]models.User) error
}
