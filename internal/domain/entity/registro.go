package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	TipoEntrada = "ENTRADA" // entrada de mercadería (suma stock, recalcula costo)
	TipoSalida  = "SALIDA"  // salida de mercadería (resta stock, costo intacto)
)

// Registro es la cabecera de un movimiento de inventario. Inmutable una vez
// creada: no existe camino de actualización ni borrado.
type Registro struct {
	ID             int64
	Tipo           string // ENTRADA | SALIDA
	ProveedorID    int64  // solo entradas
	Proveedor      string // nombre del proveedor (entradas)
	Destino        string // texto libre (salidas)
	Motivo         string // solo salidas
	NumComprobante string
	Fecha          time.Time
	Usuario        string
}

// Detalle es una línea de un registro. Se crea siempre después de que exista
// su cabecera. Append-only, igual que Registro.
type Detalle struct {
	ID             int64
	RegistroID     int64
	ArticuloID     int64
	Articulo       string // nombre al momento del movimiento
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal // Cantidad * PrecioUnitario
	CostoBase      decimal.Decimal // entradas: costo promedio resultante aplicado al artículo
}

// RegistroConDetalles cabecera más sus líneas, para listados y reportes.
type RegistroConDetalles struct {
	Registro
	Detalles []Detalle
}

// Total suma los totales de las líneas.
func (r RegistroConDetalles) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Detalles {
		total = total.Add(d.Total)
	}
	return total
}
