package store

import (
	"sync"

	"category_admin/internal/domain"

	"github.com/sirupsen/logrus"
)

// memoryCategoryStore keeps categories in fetch/insertion order.
type memoryCategoryStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	log        *logrus.Logger
}

func NewCategoryStore(logger *logrus.Logger) domain.CategoryStore {
	return &memoryCategoryStore{
		categories: []domain.Category{},
		log:        logger,
	}
}

// Load replaces the whole collection. No validation is done; the records
// come from the remote API.
func (s *memoryCategoryStore) Load(categories []domain.Category) {
	loaded := make([]domain.Category, len(categories))
	copy(loaded, categories)

	s.mu.Lock()
	s.categories = loaded
	s.mu.Unlock()

	s.log.Debugf("Store: Loaded %d categories", len(loaded))
}

// Add appends category. Callers validate before adding.
func (s *memoryCategoryStore) Add(category domain.Category) {
	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()

	s.log.Debugf("Store: Added category ID %d", category.ID)
}

// Replace swaps the record with the same ID in place. It reports false and
// leaves the collection untouched when no such record exists.
func (s *memoryCategoryStore) Replace(category domain.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == category.ID {
			s.categories[i] = category
			s.log.Debugf("Store: Replaced category ID %d", category.ID)
			return true
		}
	}
	return false
}

// Remove deletes the record with the given ID, if present.
func (s *memoryCategoryStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		remaining := make([]domain.Category, 0, len(s.categories)-1)
		remaining = append(remaining, s.categories[:i]...)
		remaining = append(remaining, s.categories[i+1:]...)
		s.categories = remaining
		s.log.Debugf("Store: Removed category ID %d", id)
		return true
	}
	return false
}

// List returns a snapshot copy of the collection.
func (s *memoryCategoryStore) List() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *memoryCategoryStore) Find(id int) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

func (s *memoryCategoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories)
}
