package repository

import (
	"context"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// ArticuloRepository define el puerto hacia el API remoto para Articulo (DIP).
// Update es reemplazo completo: el API no soporta updates parciales, hay que
// reenviar el registro entero aunque solo cambie el stock.
type ArticuloRepository interface {
	List(ctx context.Context) ([]*entity.Articulo, error)
	GetByID(ctx context.Context, id int64) (*entity.Articulo, error)
	Create(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error)
	Update(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error)
	Delete(ctx context.Context, id int64) error
}
