package entity

import "github.com/shopspring/decimal"

// Categoria agrupa artículos para filtros y reportes.
type Categoria struct {
	ID     int64
	Nombre string
}

// Proveedor contraparte de las entradas. Se crea implícitamente cuando una
// entrada referencia un nombre de proveedor que aún no existe.
type Proveedor struct {
	ID        int64
	Nombre    string
	Direccion string
	Telefono  string
}

// Cliente destinatario de listas de precios y comprobantes.
type Cliente struct {
	ID              int64
	Nombre          string
	Documento       string
	Direccion       string
	Telefono        string
	ResponsableID   int64 // tipo de responsabilidad fiscal
	ListaPrecioID   int64
}

// ListaPrecio lista de precios con porcentaje sobre el costo.
type ListaPrecio struct {
	ID         int64
	Nombre     string
	Porcentaje decimal.Decimal
}

// TipoResponsable tipo de responsabilidad fiscal (IVA responsable, monotributo, etc.).
type TipoResponsable struct {
	ID     int64
	Nombre string
}

// TipoComprobante tipo de comprobante (factura A/B/C, remito, etc.).
type TipoComprobante struct {
	ID     int64
	Nombre string
}
