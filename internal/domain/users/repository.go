package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (id int64, affected int64, err error)
	GetByID(ctx context.Context, id int64) (User, bool, error)
	List(ctx context.Context) ([]User, error)
}
