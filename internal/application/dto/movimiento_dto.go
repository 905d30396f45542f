package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaEntradaRequest línea de una entrada. Si el artículo no existe todavía,
// categoria_id, precio_venta y descripcion alimentan su creación implícita.
type LineaEntradaRequest struct {
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	CategoriaID    int64           `json:"categoria_id,omitempty"`
	PrecioVenta    decimal.Decimal `json:"precio_venta,omitempty"`
	Descripcion    string          `json:"descripcion,omitempty"`
}

// EntradaRequest body para POST /api/movimientos/entradas.
type EntradaRequest struct {
	Proveedor          string                `json:"proveedor"`
	DireccionProveedor string                `json:"direccion_proveedor,omitempty"`
	TelefonoProveedor  string                `json:"telefono_proveedor,omitempty"`
	NumComprobante     string                `json:"num_comprobante"`
	Fecha              time.Time             `json:"fecha,omitempty"`
	Lineas             []LineaEntradaRequest `json:"lineas"`
}

// LineaSalidaRequest línea de una salida: el artículo debe existir.
type LineaSalidaRequest struct {
	ArticuloID     int64           `json:"articulo_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario,omitempty"` // vacío = precio de venta actual
}

// SalidaRequest body para POST /api/movimientos/salidas.
type SalidaRequest struct {
	Destino        string               `json:"destino"`
	Motivo         string               `json:"motivo"`
	NumComprobante string               `json:"num_comprobante"`
	Fecha          time.Time            `json:"fecha,omitempty"`
	Lineas         []LineaSalidaRequest `json:"lineas"`
}

// AdvertenciaResponse aviso no bloqueante de una entrada confirmada.
type AdvertenciaResponse struct {
	ArticuloID  int64           `json:"articulo_id"`
	Articulo    string          `json:"articulo"`
	CostoNuevo  decimal.Decimal `json:"costo_nuevo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

// EnvioResponse resultado de un movimiento confirmado.
type EnvioResponse struct {
	RegistroID   int64                 `json:"registro_id"`
	Pasos        []PasoAplicado        `json:"pasos_aplicados"`
	Advertencias []AdvertenciaResponse `json:"advertencias,omitempty"`
}

// DetalleResponse línea de un registro para listados.
type DetalleResponse struct {
	ID             int64           `json:"id"`
	ArticuloID     int64           `json:"articulo_id"`
	Articulo       string          `json:"articulo"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

// RegistroResponse cabecera con líneas para GET /api/movimientos.
type RegistroResponse struct {
	ID             int64             `json:"id"`
	Tipo           string            `json:"tipo"`
	Proveedor      string            `json:"proveedor,omitempty"`
	Destino        string            `json:"destino,omitempty"`
	Motivo         string            `json:"motivo,omitempty"`
	NumComprobante string            `json:"num_comprobante"`
	Fecha          time.Time         `json:"fecha"`
	Usuario        string            `json:"usuario,omitempty"`
	Total          decimal.Decimal   `json:"total"`
	Detalles       []DetalleResponse `json:"detalles"`
}
