// Package memstore is an in-process implementation of store.Store used for
// local development (STORE_DRIVER=memory) and as the test double for the
// services and controllers.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ppdb/model"
	"ppdb/store"
)

type entry[T any] struct {
	seq int
	doc T
}

type Store struct {
	mu            sync.RWMutex
	seq           int
	now           func() time.Time
	users         map[string]*entry[model.User]
	registrations map[string]*entry[model.Registration]
	products      map[string]*entry[model.Product]
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		now:           func() time.Time { return time.Now().UTC() },
		users:         make(map[string]*entry[model.User]),
		registrations: make(map[string]*entry[model.Registration]),
		products:      make(map[string]*entry[model.Product]),
	}
}

// SetClock replaces the timestamp source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Close() error { return nil }

func (s *Store) nextSeq() int {
	s.seq++
	return s.seq
}

// newestFirst orders by createdAt descending, breaking ties by insertion.
func newestFirst[T any](entries []*entry[T], created func(T) time.Time) []*T {
	sort.Slice(entries, func(i, j int) bool {
		ci, cj := created(entries[i].doc), created(entries[j].doc)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return entries[i].seq > entries[j].seq
	})
	out := make([]*T, 0, len(entries))
	for _, e := range entries {
		doc := e.doc
		out = append(out, &doc)
	}
	return out
}

// ---- users ----

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.users {
		if e.doc.Email == u.Email {
			return store.ErrDuplicate
		}
	}

	u.ID = uuid.New().String()
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = &entry[model.User]{seq: s.nextSeq(), doc: *u}
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	u := e.doc
	return &u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.users {
		if e.doc.Email == email {
			u := e.doc
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context, roles ...string) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*entry[model.User]
	for _, e := range s.users {
		if len(roles) == 0 || contains(roles, e.doc.Role) {
			matched = append(matched, e)
		}
	}
	return newestFirst(matched, func(u model.User) time.Time { return u.CreatedAt }), nil
}

func (s *Store) UpdateUser(_ context.Context, id string, p store.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if p.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && other.doc.Email == *p.Email {
				return store.ErrDuplicate
			}
		}
	}
	p.Apply(&e.doc)
	e.doc.UpdatedAt = s.now()
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// ---- registrations ----

func (s *Store) CreateRegistration(_ context.Context, r *model.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.New().String()
	now := s.now()
	r.CreatedAt, r.UpdatedAt = now, now
	s.registrations[r.ID] = &entry[model.Registration]{seq: s.nextSeq(), doc: *r}
	return nil
}

func (s *Store) GetRegistration(_ context.Context, id string) (*model.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.registrations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	r := e.doc
	return &r, nil
}

func (s *Store) ListRegistrations(_ context.Context, status string) ([]*model.Registration, error) {
	return s.filterRegistrations(func(r model.Registration) bool {
		return status == "" || r.Status == status
	}), nil
}

func (s *Store) ListRegistrationsByEmail(_ context.Context, email string) ([]*model.Registration, error) {
	return s.filterRegistrations(func(r model.Registration) bool {
		return r.Email == email
	}), nil
}

func (s *Store) filterRegistrations(keep func(model.Registration) bool) []*model.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*entry[model.Registration]
	for _, e := range s.registrations {
		if keep(e.doc) {
			matched = append(matched, e)
		}
	}
	return newestFirst(matched, func(r model.Registration) time.Time { return r.CreatedAt })
}

func (s *Store) UpdateRegistration(_ context.Context, id string, p store.RegistrationPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.registrations[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Apply(&e.doc)
	e.doc.UpdatedAt = s.now()
	return nil
}

func (s *Store) DeleteRegistration(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registrations[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.registrations, id)
	return nil
}

// ---- products ----

func (s *Store) CreateProduct(_ context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	s.products[p.ID] = &entry[model.Product]{seq: s.nextSeq(), doc: *p}
	return nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p := e.doc
	return &p, nil
}

func (s *Store) FindProductByName(_ context.Context, nama string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.products {
		if e.doc.Nama == nama {
			p := e.doc
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListProducts(_ context.Context) ([]*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*entry[model.Product], 0, len(s.products))
	for _, e := range s.products {
		all = append(all, e)
	}
	return newestFirst(all, func(p model.Product) time.Time { return p.CreatedAt }), nil
}

func (s *Store) UpdateProduct(_ context.Context, id string, p store.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.products[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Apply(&e.doc)
	e.doc.UpdatedAt = s.now()
	return nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
