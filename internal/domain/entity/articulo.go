package entity

import "github.com/shopspring/decimal"

// Articulo representa un artículo del inventario.
// Costo es promedio ponderado recalculado en cada entrada; nunca se iguala al precio de venta.
// StockActual no baja de cero tras una salida confirmada.
// Los IDs los acuña el API remoto; este sistema nunca los genera.
type Articulo struct {
	ID          int64
	Nombre      string
	CategoriaID int64
	ProveedorID int64
	PrecioVenta decimal.Decimal
	Costo       decimal.Decimal // costo promedio ponderado (inicia en 0)
	StockActual decimal.Decimal
	Descripcion string
	Activo      bool
	// Version la devuelve el API remoto y se reenvía tal cual en cada update.
	// Hoy no se verifica: es el punto de anclaje para control de concurrencia futuro.
	Version int64
}

// El API remoto solo soporta reemplazo completo del registro, así que toda
// mutación parte del último registro completo conocido y sobrescribe solo el
// campo que cambia. Evita pisar campos no relacionados (descripción, precio).

// ConStock devuelve una copia con el stock reemplazado.
func (a Articulo) ConStock(stock decimal.Decimal) Articulo {
	a.StockActual = stock
	return a
}

// ConCosto devuelve una copia con el costo reemplazado.
func (a Articulo) ConCosto(costo decimal.Decimal) Articulo {
	a.Costo = costo
	return a
}

// ConPrecioVenta devuelve una copia con el precio de venta reemplazado.
func (a Articulo) ConPrecioVenta(precio decimal.Decimal) Articulo {
	a.PrecioVenta = precio
	return a
}

// Valorizacion devuelve StockActual * Costo (valor del inventario al costo promedio).
func (a Articulo) Valorizacion() decimal.Decimal {
	return a.StockActual.Mul(a.Costo)
}
