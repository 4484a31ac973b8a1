// Package session holds the process-wide fallback state: records accepted
// while the durable store was unreachable, and the local id space for them.
// The store is created empty at service start, never persisted, and never
// cleared; only the services owning each entity type write to it.
package session

import (
	"sync"
	"time"

	"github.com/hannahenterprises/constructly-server/internal/domain"
)

type Store struct {
	mu     sync.Mutex
	lastID int64

	builders   []domain.Builder
	projects   []domain.Project
	quotations []domain.Quotation
	houses     []domain.House
}

func NewStore() *Store {
	return &Store{}
}

// MintID returns a fresh session-local id. Ids are millisecond timestamps
// bumped past the previous one, so they are strictly increasing within the
// process and collision-resistant across restarts.
func (s *Store) MintID() domain.EntityID {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return domain.LocalID(now)
}

func (s *Store) AddBuilder(b domain.Builder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builders = append(s.builders, b)
}

func (s *Store) Builders() []domain.Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Builder(nil), s.builders...)
}

func (s *Store) AddProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}

func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Project(nil), s.projects...)
}

// UpdateProject applies fn to the cached copy matching id, if one exists,
// and returns the mutated copy. Matching is by normalized id, so a durable
// id finds a cache record that later reached the store and vice versa.
func (s *Store) UpdateProject(id domain.EntityID, fn func(*domain.Project)) (*domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID.Equal(id) {
			fn(&s.projects[i])
			p := s.projects[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *Store) AddQuotation(q domain.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotations = append(s.quotations, q)
}

func (s *Store) QuotationsByProject(projectID domain.EntityID) []domain.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Quotation
	for _, q := range s.quotations {
		if q.ProjectID.Equal(projectID) {
			out = append(out, q)
		}
	}
	return out
}

func (s *Store) AddHouse(h domain.House) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.houses = append(s.houses, h)
}

func (s *Store) Houses() []domain.House {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.House(nil), s.houses...)
}
