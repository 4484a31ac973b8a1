package service

import (
	"context"
	"errors"
	"sync"

	"github.com/hannahenterprises/constructly-server/internal/domain"
	"github.com/hannahenterprises/constructly-server/internal/repository"

	"github.com/google/uuid"
)

// errStoreDown stands in for an unreachable durable store.
var errStoreDown = errors.New("store down")

type failingBuilderRepo struct{}

func (failingBuilderRepo) Create(context.Context, *domain.Builder) error { return errStoreDown }
func (failingBuilderRepo) List(context.Context) ([]domain.Builder, error) {
	return nil, errStoreDown
}

type memBuilderRepo struct {
	mu    sync.Mutex
	items []domain.Builder
}

func (r *memBuilderRepo) Create(_ context.Context, b *domain.Builder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = domain.DurableID(uuid.New().String())
	r.items = append(r.items, *b)
	return nil
}

func (r *memBuilderRepo) List(context.Context) ([]domain.Builder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Builder(nil), r.items...), nil
}

type failingProjectRepo struct{}

func (failingProjectRepo) Create(context.Context, *domain.Project) error { return errStoreDown }
func (failingProjectRepo) List(context.Context) ([]domain.Project, error) {
	return nil, errStoreDown
}
func (failingProjectRepo) GetByID(context.Context, domain.EntityID) (*domain.Project, error) {
	return nil, errStoreDown
}
func (failingProjectRepo) Save(context.Context, *domain.Project) error { return errStoreDown }

type memProjectRepo struct {
	mu    sync.Mutex
	items []domain.Project
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = domain.DurableID(uuid.New().String())
	r.items = append(r.items, *p)
	return nil
}

func (r *memProjectRepo) List(context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Project(nil), r.items...), nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id domain.EntityID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID.Equal(id) {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProjectRepo) Save(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Equal(p.ID) {
			r.items[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

// saveFailProjectRepo reads fine but loses every write-back, as when the
// store drops out between a lookup and the following save.
type saveFailProjectRepo struct {
	memProjectRepo
}

func (*saveFailProjectRepo) Save(context.Context, *domain.Project) error { return errStoreDown }

type failingQuotationRepo struct{}

func (failingQuotationRepo) Create(context.Context, *domain.Quotation) error { return errStoreDown }
func (failingQuotationRepo) ListByProject(context.Context, domain.EntityID) ([]domain.Quotation, error) {
	return nil, errStoreDown
}

type memQuotationRepo struct {
	mu    sync.Mutex
	items []domain.Quotation
}

func (r *memQuotationRepo) Create(_ context.Context, q *domain.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.ID = domain.DurableID(uuid.New().String())
	r.items = append(r.items, *q)
	return nil
}

func (r *memQuotationRepo) ListByProject(_ context.Context, projectID domain.EntityID) ([]domain.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Quotation
	for _, q := range r.items {
		if q.ProjectID.Equal(projectID) {
			out = append(out, q)
		}
	}
	return out, nil
}

type failingHouseRepo struct{}

func (failingHouseRepo) Create(context.Context, *domain.House) error { return errStoreDown }
func (failingHouseRepo) List(context.Context) ([]domain.House, error) {
	return nil, errStoreDown
}

type failingChatRepo struct{}

func (failingChatRepo) Save(context.Context, *domain.ChatMessage) error { return errStoreDown }
func (failingChatRepo) History(context.Context, string) ([]domain.ChatMessage, error) {
	return nil, errStoreDown
}

type memChatRepo struct {
	mu    sync.Mutex
	items []domain.ChatMessage
}

func (r *memChatRepo) Save(_ context.Context, m *domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *m)
	return nil
}

func (r *memChatRepo) History(_ context.Context, roomID string) ([]domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ChatMessage
	for _, m := range r.items {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memChatRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
