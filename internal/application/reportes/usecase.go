package reportes

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// ReporteUseCase arma los reportes de inventario y movimientos a partir del
// API remoto. El layout del PDF vive detrás del puerto GeneradorPDF.
type ReporteUseCase struct {
	articulos repository.ArticuloRepository
	registros repository.RegistroRepository
	pdf       GeneradorPDF
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(
	articulos repository.ArticuloRepository,
	registros repository.RegistroRepository,
	pdf GeneradorPDF,
) *ReporteUseCase {
	return &ReporteUseCase{articulos: articulos, registros: registros, pdf: pdf}
}

// InventarioPDF genera el reporte de inventario valorizado (solo activos).
func (uc *ReporteUseCase) InventarioPDF(ctx context.Context) ([]byte, error) {
	todos, err := uc.articulos.List(ctx)
	if err != nil {
		return nil, err
	}
	activos := make([]*entity.Articulo, 0, len(todos))
	for _, a := range todos {
		if a.Activo {
			activos = append(activos, a)
		}
	}
	return uc.pdf.ReporteInventario(ctx, activos)
}

// MovimientosPDF genera el reporte de movimientos, con filtro opcional por
// tipo y rango de fechas.
func (uc *ReporteUseCase) MovimientosPDF(ctx context.Context, tipo string, desde, hasta time.Time) ([]byte, error) {
	todos, err := uc.registros.ListConDetalles(ctx)
	if err != nil {
		return nil, err
	}
	filtrados := make([]*entity.RegistroConDetalles, 0, len(todos))
	for _, r := range todos {
		if tipo != "" && r.Tipo != tipo {
			continue
		}
		if !desde.IsZero() && r.Fecha.Before(desde) {
			continue
		}
		if !hasta.IsZero() && r.Fecha.After(hasta) {
			continue
		}
		filtrados = append(filtrados, r)
	}
	return uc.pdf.ReporteMovimientos(ctx, filtrados)
}

// ArticulosCSV exporta el catálogo completo en CSV (separador coma, UTF-8).
func (uc *ReporteUseCase) ArticulosCSV(ctx context.Context) ([]byte, error) {
	todos, err := uc.articulos.List(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "nombre", "categoria_id", "proveedor_id", "precio_venta", "costo", "stock_actual", "descripcion", "activo"})
	for _, a := range todos {
		activo := "0"
		if a.Activo {
			activo = "1"
		}
		if err := w.Write([]string{
			strconv.FormatInt(a.ID, 10),
			a.Nombre,
			strconv.FormatInt(a.CategoriaID, 10),
			strconv.FormatInt(a.ProveedorID, 10),
			a.PrecioVenta.StringFixed(2),
			a.Costo.StringFixed(2),
			a.StockActual.String(),
			a.Descripcion,
			activo,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
