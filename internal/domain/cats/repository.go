package cats

import "context"

// Repository es una ida y vuelta al store por método. Las escrituras devuelven
// filas afectadas; decidir si 0 es un error le toca al Service.
// Sólo Update filtra por Scope; Delete borra por id.
type Repository interface {
	List(ctx context.Context) ([]Cat, error)
	GetByID(ctx context.Context, id int64) (Cat, bool, error)
	Create(ctx context.Context, c NewCat) (id int64, affected int64, err error)
	Update(ctx context.Context, id int64, p Patch, scope Scope) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Cat, error)
}
