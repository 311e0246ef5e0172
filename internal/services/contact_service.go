package services

import (
	"time"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
	"github.com/jasongilchristp/xrm-by-json/internal/metrics"
	"github.com/jasongilchristp/xrm-by-json/internal/models"
	"github.com/jasongilchristp/xrm-by-json/internal/query"
	repo "github.com/jasongilchristp/xrm-by-json/internal/repository"
)

type ContactService struct {
	r   repo.Contacts
	now func() time.Time
}

func NewContactService(r repo.Contacts) *ContactService {
	return &ContactService{r: r, now: time.Now}
}

// List runs the query pipeline over the contacts table. It returns the
// filtered rows, the letter-filter options and the unfiltered table size.
func (s *ContactService) List(opt query.Options) ([]models.Contact, []string, int, error) {
	contacts, err := s.r.Load()
	if err != nil {
		return nil, nil, 0, err
	}
	return query.Contacts(contacts, opt), query.ContactLetters(contacts), len(contacts), nil
}

// Add validates c, assigns a generated id and appends it to the table.
func (s *ContactService) Add(c models.Contact) (models.Contact, error) {
	if err := c.Validate(); err != nil {
		return models.Contact{}, err
	}
	contacts, err := s.r.Load()
	if err != nil {
		return models.Contact{}, err
	}
	c.ID = models.GenerateContactID(c.FullName(), s.now())
	contacts = append(contacts, c)
	if err := s.r.Save(contacts); err != nil {
		return models.Contact{}, err
	}
	metrics.RecordsTotal.WithLabelValues("contacts").Set(float64(len(contacts)))
	return c, nil
}

// Update replaces the fields of the contact with the given id. The id itself
// is immutable.
func (s *ContactService) Update(id string, upd models.Contact) (models.Contact, error) {
	if err := upd.Validate(); err != nil {
		return models.Contact{}, err
	}
	contacts, err := s.r.Load()
	if err != nil {
		return models.Contact{}, err
	}
	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		upd.ID = id
		contacts[i] = upd
		if err := s.r.Save(contacts); err != nil {
			return models.Contact{}, err
		}
		return upd, nil
	}
	return models.Contact{}, apperr.NotFoundf("contact %s", id)
}

func (s *ContactService) Delete(id string) error {
	contacts, err := s.r.Load()
	if err != nil {
		return err
	}
	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		contacts = append(contacts[:i], contacts[i+1:]...)
		if err := s.r.Save(contacts); err != nil {
			return err
		}
		metrics.RecordsTotal.WithLabelValues("contacts").Set(float64(len(contacts)))
		return nil
	}
	return apperr.NotFoundf("contact %s", id)
}
