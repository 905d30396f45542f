package reportes

import (
	"context"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// GeneradorPDF puerto de salida para la generación de reportes en PDF.
// La implementación concreta usa Maroto; para tests se inyecta un mock.
type GeneradorPDF interface {
	ReporteInventario(ctx context.Context, articulos []*entity.Articulo) ([]byte, error)
	ReporteMovimientos(ctx context.Context, registros []*entity.RegistroConDetalles) ([]byte, error)
}
