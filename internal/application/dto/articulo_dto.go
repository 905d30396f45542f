package dto

import "github.com/shopspring/decimal"

// ArticuloResponse representación de un artículo en respuestas.
type ArticuloResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	CategoriaID int64           `json:"categoria_id"`
	ProveedorID int64           `json:"proveedor_id"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Costo       decimal.Decimal `json:"costo"`
	StockActual decimal.Decimal `json:"stock_actual"`
	Descripcion string          `json:"descripcion,omitempty"`
	Activo      bool            `json:"activo"`
}

// CreateArticuloRequest body para crear un artículo. Stock y costo nacen en
// cero: solo los movimientos los cambian.
type CreateArticuloRequest struct {
	Nombre      string          `json:"nombre"`
	CategoriaID int64           `json:"categoria_id"`
	ProveedorID int64           `json:"proveedor_id"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// UpdateArticuloRequest body para actualizar datos comerciales de un artículo.
// Stock y costo NO se tocan por acá: eso es territorio de los movimientos.
type UpdateArticuloRequest struct {
	Nombre      string          `json:"nombre"`
	CategoriaID int64           `json:"categoria_id"`
	ProveedorID int64           `json:"proveedor_id"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Descripcion string          `json:"descripcion,omitempty"`
	Activo      *bool           `json:"activo,omitempty"`
}
