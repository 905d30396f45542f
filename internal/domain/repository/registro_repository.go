package repository

import (
	"context"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// RegistroRepository define el puerto para cabeceras y líneas de movimiento.
// Ambas son append-only: no hay update ni delete. Cada Create es una llamada
// de red independiente; no existe atomicidad entre cabecera y líneas.
type RegistroRepository interface {
	CreateCabecera(ctx context.Context, r *entity.Registro) (*entity.Registro, error)
	CreateDetalle(ctx context.Context, d *entity.Detalle) (*entity.Detalle, error)
	ListConDetalles(ctx context.Context) ([]*entity.RegistroConDetalles, error)
}
