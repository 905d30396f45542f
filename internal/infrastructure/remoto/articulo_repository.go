package remoto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

const recursoArticulos = "articulos"

// articuloWire representación JSON de un artículo en el API remoto.
// El update es reemplazo completo: se envían TODOS los campos siempre.
type articuloWire struct {
	ID          int64           `json:"id,omitempty"`
	Nombre      string          `json:"nombre"`
	CategoriaID int64           `json:"categoria_id"`
	ProveedorID int64           `json:"proveedor_id"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Costo       decimal.Decimal `json:"costo"`
	StockActual decimal.Decimal `json:"stock_actual"`
	Descripcion string          `json:"descripcion"`
	Activo      bool            `json:"activo"`
	Version     int64           `json:"version,omitempty"`
}

func (w articuloWire) entidad() *entity.Articulo {
	return &entity.Articulo{
		ID:          w.ID,
		Nombre:      w.Nombre,
		CategoriaID: w.CategoriaID,
		ProveedorID: w.ProveedorID,
		PrecioVenta: w.PrecioVenta,
		Costo:       w.Costo,
		StockActual: w.StockActual,
		Descripcion: w.Descripcion,
		Activo:      w.Activo,
		Version:     w.Version,
	}
}

func articuloAWire(a *entity.Articulo) articuloWire {
	return articuloWire{
		ID:          a.ID,
		Nombre:      a.Nombre,
		CategoriaID: a.CategoriaID,
		ProveedorID: a.ProveedorID,
		PrecioVenta: a.PrecioVenta,
		Costo:       a.Costo,
		StockActual: a.StockActual,
		Descripcion: a.Descripcion,
		Activo:      a.Activo,
		Version:     a.Version,
	}
}

// ArticuloRepository implementa repository.ArticuloRepository contra el API remoto.
type ArticuloRepository struct {
	c *Client
}

// NewArticuloRepository construye el repositorio.
func NewArticuloRepository(c *Client) *ArticuloRepository {
	return &ArticuloRepository{c: c}
}

// List devuelve el catálogo completo.
func (r *ArticuloRepository) List(ctx context.Context) ([]*entity.Articulo, error) {
	var ws []articuloWire
	if err := r.c.list(ctx, recursoArticulos, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.Articulo, len(ws))
	for i, w := range ws {
		out[i] = w.entidad()
	}
	return out, nil
}

// GetByID devuelve un artículo por ID.
func (r *ArticuloRepository) GetByID(ctx context.Context, id int64) (*entity.Articulo, error) {
	var w articuloWire
	if err := r.c.get(ctx, recursoArticulos, id, &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

// Create crea el artículo; el API devuelve el registro con su ID acuñado.
func (r *ArticuloRepository) Create(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	var w articuloWire
	if err := r.c.post(ctx, recursoArticulos, articuloAWire(a), &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

// Update reemplaza el registro completo.
func (r *ArticuloRepository) Update(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	var w articuloWire
	if err := r.c.put(ctx, recursoArticulos, a.ID, articuloAWire(a), &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

// Delete baja lógica en el API remoto.
func (r *ArticuloRepository) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, recursoArticulos, id)
}
