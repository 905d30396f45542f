package remoto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

const (
	recursoProveedores      = "proveedores"
	recursoCategorias       = "categorias"
	recursoClientes         = "clientes"
	recursoListas           = "listas"
	recursoTiposResponsable = "tipos_responsable"
	recursoTiposComprobante = "tipos_comprobante"
)

// ── Proveedores ───────────────────────────────────────────────────────────────

type proveedorWire struct {
	ID        int64  `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// ProveedorRepository implementa repository.ProveedorRepository.
type ProveedorRepository struct {
	c *Client
}

// NewProveedorRepository construye el repositorio.
func NewProveedorRepository(c *Client) *ProveedorRepository {
	return &ProveedorRepository{c: c}
}

func (r *ProveedorRepository) List(ctx context.Context) ([]*entity.Proveedor, error) {
	var ws []proveedorWire
	if err := r.c.list(ctx, recursoProveedores, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.Proveedor, len(ws))
	for i, w := range ws {
		out[i] = &entity.Proveedor{ID: w.ID, Nombre: w.Nombre, Direccion: w.Direccion, Telefono: w.Telefono}
	}
	return out, nil
}

func (r *ProveedorRepository) GetByID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	var w proveedorWire
	if err := r.c.get(ctx, recursoProveedores, id, &w); err != nil {
		return nil, err
	}
	return &entity.Proveedor{ID: w.ID, Nombre: w.Nombre, Direccion: w.Direccion, Telefono: w.Telefono}, nil
}

func (r *ProveedorRepository) Create(ctx context.Context, p *entity.Proveedor) (*entity.Proveedor, error) {
	in := proveedorWire{Nombre: p.Nombre, Direccion: p.Direccion, Telefono: p.Telefono}
	var w proveedorWire
	if err := r.c.post(ctx, recursoProveedores, in, &w); err != nil {
		return nil, err
	}
	return &entity.Proveedor{ID: w.ID, Nombre: w.Nombre, Direccion: w.Direccion, Telefono: w.Telefono}, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type categoriaWire struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}

// CategoriaRepository implementa repository.CategoriaRepository.
type CategoriaRepository struct {
	c *Client
}

// NewCategoriaRepository construye el repositorio.
func NewCategoriaRepository(c *Client) *CategoriaRepository {
	return &CategoriaRepository{c: c}
}

func (r *CategoriaRepository) List(ctx context.Context) ([]*entity.Categoria, error) {
	var ws []categoriaWire
	if err := r.c.list(ctx, recursoCategorias, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.Categoria, len(ws))
	for i, w := range ws {
		out[i] = &entity.Categoria{ID: w.ID, Nombre: w.Nombre}
	}
	return out, nil
}

func (r *CategoriaRepository) Create(ctx context.Context, cat *entity.Categoria) (*entity.Categoria, error) {
	var w categoriaWire
	if err := r.c.post(ctx, recursoCategorias, categoriaWire{Nombre: cat.Nombre}, &w); err != nil {
		return nil, err
	}
	return &entity.Categoria{ID: w.ID, Nombre: w.Nombre}, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type clienteWire struct {
	ID            int64  `json:"id,omitempty"`
	Nombre        string `json:"nombre"`
	Documento     string `json:"documento"`
	Direccion     string `json:"direccion"`
	Telefono      string `json:"telefono"`
	ResponsableID int64  `json:"responsable_id"`
	ListaPrecioID int64  `json:"lista_precio_id"`
}

func (w clienteWire) entidad() *entity.Cliente {
	return &entity.Cliente{
		ID:            w.ID,
		Nombre:        w.Nombre,
		Documento:     w.Documento,
		Direccion:     w.Direccion,
		Telefono:      w.Telefono,
		ResponsableID: w.ResponsableID,
		ListaPrecioID: w.ListaPrecioID,
	}
}

func clienteAWire(c *entity.Cliente) clienteWire {
	return clienteWire{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Documento:     c.Documento,
		Direccion:     c.Direccion,
		Telefono:      c.Telefono,
		ResponsableID: c.ResponsableID,
		ListaPrecioID: c.ListaPrecioID,
	}
}

// ClienteRepository implementa repository.ClienteRepository.
type ClienteRepository struct {
	c *Client
}

// NewClienteRepository construye el repositorio.
func NewClienteRepository(c *Client) *ClienteRepository {
	return &ClienteRepository{c: c}
}

func (r *ClienteRepository) List(ctx context.Context) ([]*entity.Cliente, error) {
	var ws []clienteWire
	if err := r.c.list(ctx, recursoClientes, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.Cliente, len(ws))
	for i, w := range ws {
		out[i] = w.entidad()
	}
	return out, nil
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	var w clienteWire
	if err := r.c.get(ctx, recursoClientes, id, &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

func (r *ClienteRepository) Create(ctx context.Context, cli *entity.Cliente) (*entity.Cliente, error) {
	var w clienteWire
	if err := r.c.post(ctx, recursoClientes, clienteAWire(cli), &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

func (r *ClienteRepository) Update(ctx context.Context, cli *entity.Cliente) (*entity.Cliente, error) {
	var w clienteWire
	if err := r.c.put(ctx, recursoClientes, cli.ID, clienteAWire(cli), &w); err != nil {
		return nil, err
	}
	return w.entidad(), nil
}

// ── Listas de precios y tipos ─────────────────────────────────────────────────

type listaWire struct {
	ID         int64           `json:"id,omitempty"`
	Nombre     string          `json:"nombre"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// ListaPrecioRepository implementa repository.ListaPrecioRepository.
type ListaPrecioRepository struct {
	c *Client
}

// NewListaPrecioRepository construye el repositorio.
func NewListaPrecioRepository(c *Client) *ListaPrecioRepository {
	return &ListaPrecioRepository{c: c}
}

func (r *ListaPrecioRepository) List(ctx context.Context) ([]*entity.ListaPrecio, error) {
	var ws []listaWire
	if err := r.c.list(ctx, recursoListas, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.ListaPrecio, len(ws))
	for i, w := range ws {
		out[i] = &entity.ListaPrecio{ID: w.ID, Nombre: w.Nombre, Porcentaje: w.Porcentaje}
	}
	return out, nil
}

func (r *ListaPrecioRepository) Create(ctx context.Context, l *entity.ListaPrecio) (*entity.ListaPrecio, error) {
	var w listaWire
	if err := r.c.post(ctx, recursoListas, listaWire{Nombre: l.Nombre, Porcentaje: l.Porcentaje}, &w); err != nil {
		return nil, err
	}
	return &entity.ListaPrecio{ID: w.ID, Nombre: w.Nombre, Porcentaje: w.Porcentaje}, nil
}

type tipoWire struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// TipoRepository implementa repository.TipoRepository.
type TipoRepository struct {
	c *Client
}

// NewTipoRepository construye el repositorio.
func NewTipoRepository(c *Client) *TipoRepository {
	return &TipoRepository{c: c}
}

func (r *TipoRepository) ListResponsables(ctx context.Context) ([]*entity.TipoResponsable, error) {
	var ws []tipoWire
	if err := r.c.list(ctx, recursoTiposResponsable, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.TipoResponsable, len(ws))
	for i, w := range ws {
		out[i] = &entity.TipoResponsable{ID: w.ID, Nombre: w.Nombre}
	}
	return out, nil
}

func (r *TipoRepository) ListComprobantes(ctx context.Context) ([]*entity.TipoComprobante, error) {
	var ws []tipoWire
	if err := r.c.list(ctx, recursoTiposComprobante, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]*entity.TipoComprobante, len(ws))
	for i, w := range ws {
		out[i] = &entity.TipoComprobante{ID: w.ID, Nombre: w.Nombre}
	}
	return out, nil
}
