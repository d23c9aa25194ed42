package memory

import (
	"context"
	"sort"
	"sync"

	"cats-api/internal/domain/users"
)

// UserRepo es exportado porque el repo de gatos lo usa para el "join" del dueño.
type UserRepo struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byID: make(map[int64]users.User)}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u.ID, 1, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (users.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u, ok, nil
}

func (r *UserRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) name(id int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	return u.Name, ok
}
