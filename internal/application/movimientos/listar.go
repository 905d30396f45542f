package movimientos

import (
	"context"
	"time"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// FiltroMovimientos filtro de listado; se aplica en memoria sobre la
// respuesta del API remoto (el API no filtra).
type FiltroMovimientos struct {
	Tipo  string // ENTRADA | SALIDA | vacío = todos
	Desde time.Time
	Hasta time.Time
}

// ListarUseCase listado de registros con sus detalles.
type ListarUseCase struct {
	registros repository.RegistroRepository
}

// NewListarUseCase construye el caso de uso.
func NewListarUseCase(registros repository.RegistroRepository) *ListarUseCase {
	return &ListarUseCase{registros: registros}
}

// Listar devuelve cabeceras con líneas, filtradas.
func (uc *ListarUseCase) Listar(ctx context.Context, f FiltroMovimientos) ([]dto.RegistroResponse, error) {
	todos, err := uc.registros.ListConDetalles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroResponse, 0, len(todos))
	for _, r := range todos {
		if f.Tipo != "" && r.Tipo != f.Tipo {
			continue
		}
		if !f.Desde.IsZero() && r.Fecha.Before(f.Desde) {
			continue
		}
		if !f.Hasta.IsZero() && r.Fecha.After(f.Hasta) {
			continue
		}
		out = append(out, registroResponse(r))
	}
	return out, nil
}

func registroResponse(r *entity.RegistroConDetalles) dto.RegistroResponse {
	detalles := make([]dto.DetalleResponse, len(r.Detalles))
	for i, d := range r.Detalles {
		detalles[i] = dto.DetalleResponse{
			ID:             d.ID,
			ArticuloID:     d.ArticuloID,
			Articulo:       d.Articulo,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Total:          d.Total,
		}
	}
	return dto.RegistroResponse{
		ID:             r.ID,
		Tipo:           r.Tipo,
		Proveedor:      r.Proveedor,
		Destino:        r.Destino,
		Motivo:         r.Motivo,
		NumComprobante: r.NumComprobante,
		Fecha:          r.Fecha,
		Usuario:        r.Usuario,
		Total:          r.Total(),
		Detalles:       detalles,
	}
}
