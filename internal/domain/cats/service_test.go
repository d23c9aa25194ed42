package cats

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cats-api/internal/errs"
	"cats-api/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	cats     map[int64]Cat
	nextID   int64
	failWith error

	lastScope Scope
}

func newTestRepo() *testRepo {
	return &testRepo{cats: map[int64]Cat{}}
}

func (r *testRepo) List(ctx context.Context) ([]Cat, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]Cat, 0, len(r.cats))
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.cats[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Cat, bool, error) {
	c, ok := r.cats[id]
	return c, ok, r.failWith
}

func (r *testRepo) Create(ctx context.Context, in NewCat) (int64, int64, error) {
	if r.failWith != nil {
		return 0, 0, r.failWith
	}
	r.nextID++
	r.cats[r.nextID] = Cat{
		ID:        r.nextID,
		Name:      in.Name,
		Weight:    in.Weight,
		Filename:  in.Filename,
		Birthdate: in.Birthdate,
		Coords:    in.Coords,
		Owner:     Owner{UserID: in.OwnerID, UserName: "owner"},
	}
	return r.nextID, 1, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, p Patch, scope Scope) (int64, error) {
	r.lastScope = scope
	c, ok := r.cats[id]
	if !ok || !scope.Allows(c.Owner.UserID) {
		return 0, nil
	}
	p.Apply(&c)
	r.cats[id] = c
	return 1, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.cats[id]; !ok {
		return 0, nil
	}
	delete(r.cats, id)
	return 1, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Cat, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Cat, 0)
	for _, c := range all {
		if c.Owner.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func sampleCat(owner int64) NewCat {
	return NewCat{
		Name:      "Miri",
		Weight:    4.2,
		OwnerID:   owner,
		Filename:  "miri.jpg",
		Birthdate: time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC),
		Coords:    Coordinates{Lat: 60.17, Lng: 24.94},
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateThenGetRoundTrip(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	in := sampleCat(1)
	id, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Weight, got.Weight)
	assert.Equal(t, in.Birthdate, got.Birthdate)
	assert.Equal(t, in.Coords, got.Coords)
}

func TestService_ReadsWithoutRowsAreNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(err))
	assert.Equal(t, "No cats found", err.Error())

	_, err = svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, errs.NotFound)

	_, err = svc.ListByOwner(ctx, 1)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestService_ListByOwnerReturnsEveryCat(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	for _, owner := range []int64{1, 2, 1, 1} {
		_, err := svc.Create(ctx, sampleCat(owner))
		require.NoError(t, err)
	}

	mine, err := svc.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestService_WritesWithoutRowsAreBadRequest(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	err := svc.Delete(ctx, 99)
	assert.ErrorIs(t, err, errs.BadRequest)
	assert.Equal(t, "No cats deleted", err.Error())

	id, err := svc.Create(ctx, sampleCat(1))
	require.NoError(t, err)

	name := "Stolen"
	err = svc.Update(ctx, id, Patch{Name: &name}, Scope{ActorID: 2})
	assert.ErrorIs(t, err, errs.BadRequest)
	assert.Equal(t, "No cats updated", err.Error())
	assert.Equal(t, Scope{ActorID: 2}, repo.lastScope)

	require.NoError(t, svc.Update(ctx, id, Patch{Name: &name}, Scope{ActorID: 3, Admin: true}))
	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Stolen", got.Name)
}

func TestService_DeleteIsByIDOnly(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())
	ctx := context.Background()

	id, err := svc.Create(ctx, sampleCat(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, errs.NotFound)

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, errs.BadRequest)
}

func TestService_UpdateEmptyPatch(t *testing.T) {
	svc := NewService(newTestRepo(), logger.Nop())

	err := svc.Update(context.Background(), 1, Patch{}, Scope{ActorID: 1})
	assert.ErrorIs(t, err, errs.BadRequest)
}

func TestService_RepoErrorsStayInternal(t *testing.T) {
	repo := newTestRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewService(repo, logger.Nop())

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(err))
	assert.ErrorIs(t, err, repo.failWith)

	// un HTTPError del repo (p.ej. FK) conserva su status aunque venga envuelto
	repo.failWith = errs.NewBadRequestError("The referenced Owner does not exist")
	_, err = svc.Create(context.Background(), sampleCat(7))
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
}

func TestPatch_AssignmentsOrderAndScope(t *testing.T) {
	w := 3.0
	c := Coordinates{Lat: 1, Lng: 2}
	p := Patch{Weight: &w, Coords: &c}

	got := p.Assignments()
	require.Len(t, got, 2)
	assert.Equal(t, FieldWeight, got[0].Field)
	assert.Equal(t, FieldCoords, got[1].Field)
	assert.False(t, p.IsEmpty())

	assert.True(t, Scope{ActorID: 1}.Allows(1))
	assert.False(t, Scope{ActorID: 1}.Allows(2))
	assert.True(t, Scope{ActorID: 1, Admin: true}.Allows(2))
}
