package dto

import "github.com/shopspring/decimal"

// CategoriaResponse / CreateCategoriaRequest.
type CategoriaResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type CreateCategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// ProveedorResponse / CreateProveedorRequest.
type ProveedorResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

type CreateProveedorRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// ClienteResponse / ClienteRequest (create y update usan el mismo cuerpo).
type ClienteResponse struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre"`
	Documento     string `json:"documento"`
	Direccion     string `json:"direccion,omitempty"`
	Telefono      string `json:"telefono,omitempty"`
	ResponsableID int64  `json:"responsable_id,omitempty"`
	ListaPrecioID int64  `json:"lista_precio_id,omitempty"`
}

type ClienteRequest struct {
	Nombre        string `json:"nombre"`
	Documento     string `json:"documento"`
	Direccion     string `json:"direccion,omitempty"`
	Telefono      string `json:"telefono,omitempty"`
	ResponsableID int64  `json:"responsable_id,omitempty"`
	ListaPrecioID int64  `json:"lista_precio_id,omitempty"`
}

// ListaPrecioResponse / CreateListaPrecioRequest.
type ListaPrecioResponse struct {
	ID         int64           `json:"id"`
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

type CreateListaPrecioRequest struct {
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// TipoResponse ítem de los catálogos chicos (responsables, comprobantes).
type TipoResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
