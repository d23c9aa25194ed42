package memory

import (
	"context"
	"sort"
	"sync"

	"cats-api/internal/domain/cats"
	"cats-api/internal/errs"
)

// catRepo imita al store SQL: ids autoincrementales, FK al dueño y join por lectura.
type catRepo struct {
	mu     sync.RWMutex
	byID   map[int64]cats.Cat
	nextID int64
	users  *UserRepo
}

func NewCatRepo(users *UserRepo) cats.Repository {
	return &catRepo{
		byID:  make(map[int64]cats.Cat),
		users: users,
	}
}

func (r *catRepo) List(ctx context.Context) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(cats.Cat) bool { return true }), nil
}

func (r *catRepo) GetByID(ctx context.Context, id int64) (cats.Cat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cats.Cat{}, false, nil
	}
	return r.withOwner(c)
}

func (r *catRepo) Create(ctx context.Context, in cats.NewCat) (int64, int64, error) {
	if _, ok := r.users.name(in.OwnerID); !ok {
		return 0, 0, errs.NewBadRequestError("The referenced Owner does not exist")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.byID[r.nextID] = cats.Cat{
		ID:        r.nextID,
		Name:      in.Name,
		Weight:    in.Weight,
		Filename:  in.Filename,
		Birthdate: in.Birthdate,
		Coords:    in.Coords,
		Owner:     cats.Owner{UserID: in.OwnerID},
	}
	return r.nextID, 1, nil
}

func (r *catRepo) Update(ctx context.Context, id int64, p cats.Patch, scope cats.Scope) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || !scope.Allows(c.Owner.UserID) {
		return 0, nil
	}
	p.Apply(&c)
	r.byID[id] = c
	return 1, nil
}

func (r *catRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerID int64) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(c cats.Cat) bool { return c.Owner.UserID == ownerID }), nil
}

// collect asume r.mu tomado. Orden por id, como el ORDER BY del store SQL.
func (r *catRepo) collect(keep func(cats.Cat) bool) []cats.Cat {
	out := make([]cats.Cat, 0)
	for _, c := range r.byID {
		if !keep(c) {
			continue
		}
		if joined, ok, _ := r.withOwner(c); ok {
			out = append(out, joined)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// withOwner completa user_name; sin dueño el gato no sale (INNER JOIN).
func (r *catRepo) withOwner(c cats.Cat) (cats.Cat, bool, error) {
	name, ok := r.users.name(c.Owner.UserID)
	if !ok {
		return cats.Cat{}, false, nil
	}
	c.Owner.UserName = name
	return c, true, nil
}
