package remoto

import (
	"context"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

const (
	recursoRegistros = "registros"
	recursoDetalles  = "detalles"
)

type registroWire struct {
	ID             int64         `json:"id,omitempty"`
	Tipo           string        `json:"tipo"`
	ProveedorID    int64         `json:"proveedor_id,omitempty"`
	Proveedor      string        `json:"proveedor,omitempty"`
	Destino        string        `json:"destino,omitempty"`
	Motivo         string        `json:"motivo,omitempty"`
	NumComprobante string        `json:"num_comprobante"`
	Fecha          time.Time     `json:"fecha"`
	Usuario        string        `json:"usuario,omitempty"`
	Detalles       []detalleWire `json:"detalles,omitempty"` // solo en listados con incluir=detalles
}

type detalleWire struct {
	ID             int64           `json:"id,omitempty"`
	RegistroID     int64           `json:"registro_id"`
	ArticuloID     int64           `json:"articulo_id"`
	Articulo       string          `json:"articulo,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	CostoBase      decimal.Decimal `json:"costo_base,omitempty"`
}

func (w registroWire) cabecera() entity.Registro {
	return entity.Registro{
		ID:             w.ID,
		Tipo:           w.Tipo,
		ProveedorID:    w.ProveedorID,
		Proveedor:      w.Proveedor,
		Destino:        w.Destino,
		Motivo:         w.Motivo,
		NumComprobante: w.NumComprobante,
		Fecha:          w.Fecha,
		Usuario:        w.Usuario,
	}
}

func (w detalleWire) entidad() entity.Detalle {
	return entity.Detalle{
		ID:             w.ID,
		RegistroID:     w.RegistroID,
		ArticuloID:     w.ArticuloID,
		Articulo:       w.Articulo,
		Cantidad:       w.Cantidad,
		PrecioUnitario: w.PrecioUnitario,
		Total:          w.Total,
		CostoBase:      w.CostoBase,
	}
}

// RegistroRepository implementa repository.RegistroRepository contra el API
// remoto. Cabeceras y detalles son append-only; el detalle siempre se crea
// después de su cabecera.
type RegistroRepository struct {
	c *Client
}

// NewRegistroRepository construye el repositorio.
func NewRegistroRepository(c *Client) *RegistroRepository {
	return &RegistroRepository{c: c}
}

// CreateCabecera crea la cabecera del movimiento.
func (r *RegistroRepository) CreateCabecera(ctx context.Context, reg *entity.Registro) (*entity.Registro, error) {
	in := registroWire{
		Tipo:           reg.Tipo,
		ProveedorID:    reg.ProveedorID,
		Proveedor:      reg.Proveedor,
		Destino:        reg.Destino,
		Motivo:         reg.Motivo,
		NumComprobante: reg.NumComprobante,
		Fecha:          reg.Fecha,
		Usuario:        reg.Usuario,
	}
	var out registroWire
	if err := r.c.post(ctx, recursoRegistros, in, &out); err != nil {
		return nil, err
	}
	cab := out.cabecera()
	return &cab, nil
}

// CreateDetalle crea una línea referida a una cabecera existente.
func (r *RegistroRepository) CreateDetalle(ctx context.Context, d *entity.Detalle) (*entity.Detalle, error) {
	in := detalleWire{
		RegistroID:     d.RegistroID,
		ArticuloID:     d.ArticuloID,
		Articulo:       d.Articulo,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Total:          d.Total,
		CostoBase:      d.CostoBase,
	}
	var out detalleWire
	if err := r.c.post(ctx, recursoDetalles, in, &out); err != nil {
		return nil, err
	}
	det := out.entidad()
	return &det, nil
}

// ListConDetalles devuelve cabeceras con sus líneas anidadas.
func (r *RegistroRepository) ListConDetalles(ctx context.Context) ([]*entity.RegistroConDetalles, error) {
	var ws []registroWire
	extra := url.Values{"incluir": []string{"detalles"}}
	if err := r.c.list(ctx, recursoRegistros, extra, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.RegistroConDetalles, len(ws))
	for i, w := range ws {
		rc := &entity.RegistroConDetalles{Registro: w.cabecera()}
		for _, dw := range w.Detalles {
			rc.Detalles = append(rc.Detalles, dw.entidad())
		}
		out[i] = rc
	}
	return out, nil
}
