package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cats-api/internal/errs"
	"cats-api/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID     map[int64]User
	nextID   int64
	affected int64
	failWith error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}, affected: 1}
}

func (r *testRepo) Create(ctx context.Context, u User) (int64, int64, error) {
	if r.failWith != nil {
		return 0, 0, r.failWith
	}
	if r.affected == 0 {
		return 0, 0, nil
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u.ID, r.affected, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, bool, error) {
	u, ok := r.byID[id]
	return u, ok, r.failWith
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]User, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateDefaultsToUserRole(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	id, err := svc.Create(ctx, User{Name: "Ann"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, User{ID: id, Name: "Ann", Role: RoleUser}, got)
}

func TestService_ReadsWithoutRowsAreNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, errs.NotFound)
	assert.Equal(t, "No users found", err.Error())

	_, err = svc.GetByID(ctx, 3)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestService_CreateWithoutRowsIsBadRequest(t *testing.T) {
	repo := newTestRepo()
	repo.affected = 0
	svc := NewService(repo, logger.Nop())

	_, err := svc.Create(context.Background(), User{Name: "Ann"})
	assert.ErrorIs(t, err, errs.BadRequest)
	assert.Equal(t, "No users added", err.Error())
}

func TestService_ListKeepsOrder(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	for _, name := range []string{"Ann", "Bob"} {
		_, err := svc.Create(ctx, User{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
}

func TestService_RepoErrorsStayInternal(t *testing.T) {
	repo := newTestRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewService(repo, logger.Nop())

	_, err := svc.List(context.Background())
	assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(err))
	assert.ErrorIs(t, err, repo.failWith)
}
