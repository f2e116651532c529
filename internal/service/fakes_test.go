package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/embedded"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
)

func discardLogger() logger.Logger {
	return logger.New(io.Discard, "off")
}

type fakeClient struct {
	mu sync.Mutex

	createID    string
	createErr   error
	linkErr     error
	updateErr   error
	deleteErr   error
	rollbackErr error
	passwordErr error

	calls    []string
	payloads []embedded.Payload
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeClient) CreateAndFetchID(_ context.Context, payload embedded.Payload) (string, error) {
	f.record("create")
	f.payloads = append(f.payloads, payload)
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createID, nil
}

func (f *fakeClient) LinkToGroup(_ context.Context, email string) error {
	f.record("link:" + email)
	return f.linkErr
}

func (f *fakeClient) Update(_ context.Context, payload embedded.Payload) error {
	f.record("update")
	f.payloads = append(f.payloads, payload)
	return f.updateErr
}

func (f *fakeClient) Delete(_ context.Context, email string) error {
	f.record("delete:" + email)
	return f.deleteErr
}

func (f *fakeClient) DeleteForRollback(_ context.Context, email string) error {
	f.record("rollback:" + email)
	return f.rollbackErr
}

func (f *fakeClient) ChangePassword(_ context.Context, email, _ string) error {
	f.record("password:" + email)
	return f.passwordErr
}

// memoryRepository guarda parceiros em memória
type memoryRepository struct {
	mu        sync.Mutex
	items     map[string]*parceiro.Parceiro
	createErr error
	updateErr error
	lastList  parceiro.Filter
}

func newMemoryRepository(items ...*parceiro.Parceiro) *memoryRepository {
	r := &memoryRepository{items: map[string]*parceiro.Parceiro{}}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *memoryRepository) Create(_ context.Context, p *parceiro.Parceiro) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*parceiro.Parceiro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, parceiro.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if strings.EqualFold(p.EmailGestor, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) List(_ context.Context, filter parceiro.Filter) ([]*parceiro.Parceiro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = filter

	var out []*parceiro.Parceiro
	for _, p := range r.items {
		if p.Status != filter.StatusOrDefault() {
			continue
		}
		if filter.SaidaDe != nil && (p.DataSaida == nil || p.DataSaida.Before(*filter.SaidaDe)) {
			continue
		}
		if filter.SaidaAte != nil && (p.DataSaida == nil || p.DataSaida.After(*filter.SaidaAte)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NomeFantasia < out[j].NomeFantasia })
	return out, nil
}

func (r *memoryRepository) Count(ctx context.Context, filter parceiro.Filter) (int, error) {
	items, err := r.List(ctx, filter)
	return len(items), err
}

func (r *memoryRepository) Update(_ context.Context, p *parceiro.Parceiro) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[p.ID]; !ok {
		return parceiro.ErrNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return parceiro.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, status bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return parceiro.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *memoryRepository) MarkSenhaDefinida(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return parceiro.ErrNotFound
	}
	p.SenhaDefinida = true
	return nil
}

func (r *memoryRepository) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
