package repository

import (
	"context"

	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// CategoriaRepository puerto para categorías de artículos.
type CategoriaRepository interface {
	List(ctx context.Context) ([]*entity.Categoria, error)
	Create(ctx context.Context, c *entity.Categoria) (*entity.Categoria, error)
}

// ClienteRepository puerto para clientes.
type ClienteRepository interface {
	List(ctx context.Context) ([]*entity.Cliente, error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	Create(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error)
}

// ListaPrecioRepository puerto para listas de precios.
type ListaPrecioRepository interface {
	List(ctx context.Context) ([]*entity.ListaPrecio, error)
	Create(ctx context.Context, l *entity.ListaPrecio) (*entity.ListaPrecio, error)
}

// TipoRepository puerto para los catálogos chicos: tipos de responsable y de comprobante.
type TipoRepository interface {
	ListResponsables(ctx context.Context) ([]*entity.TipoResponsable, error)
	ListComprobantes(ctx context.Context) ([]*entity.TipoComprobante, error)
}
