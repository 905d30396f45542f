package repository

import (
	"context"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// ProveedorRepository define el puerto hacia el API remoto para Proveedor.
type ProveedorRepository interface {
	List(ctx context.Context) ([]*entity.Proveedor, error)
	GetByID(ctx context.Context, id int64) (*entity.Proveedor, error)
	Create(ctx context.Context, p *entity.Proveedor) (*entity.Proveedor, error)
}
