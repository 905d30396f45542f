package catalogo

import (
	"context"
	"strings"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// CatalogoUseCase catálogos de soporte: categorías, proveedores, listas de
// precios y tipos. Envoltorio fino sobre los puertos remotos.
type CatalogoUseCase struct {
	categorias  repository.CategoriaRepository
	proveedores repository.ProveedorRepository
	listas      repository.ListaPrecioRepository
	tipos       repository.TipoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(
	categorias repository.CategoriaRepository,
	proveedores repository.ProveedorRepository,
	listas repository.ListaPrecioRepository,
	tipos repository.TipoRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{categorias: categorias, proveedores: proveedores, listas: listas, tipos: tipos}
}

// ListCategorias lista las categorías.
func (uc *CatalogoUseCase) ListCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	cats, err := uc.categorias.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, len(cats))
	for i, c := range cats {
		out[i] = dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre}
	}
	return out, nil
}

// CrearCategoria crea una categoría, rechazando nombres repetidos.
func (uc *CatalogoUseCase) CrearCategoria(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	existentes, err := uc.categorias.List(ctx)
	if err != nil {
		return nil, err
	}
	clave := movimientos.NormalizarNombre(in.Nombre)
	for _, c := range existentes {
		if movimientos.NormalizarNombre(c.Nombre) == clave {
			return nil, domain.ErrDuplicate
		}
	}
	creada, err := uc.categorias.Create(ctx, &entity.Categoria{Nombre: in.Nombre})
	if err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: creada.ID, Nombre: creada.Nombre}, nil
}

// ListProveedores lista los proveedores.
func (uc *CatalogoUseCase) ListProveedores(ctx context.Context) ([]dto.ProveedorResponse, error) {
	provs, err := uc.proveedores.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, len(provs))
	for i, p := range provs {
		out[i] = dto.ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Direccion: p.Direccion, Telefono: p.Telefono}
	}
	return out, nil
}

// CrearProveedor crea un proveedor explícitamente (la otra vía es la creación
// implícita desde una entrada). Misma regla: sin nombres repetidos.
func (uc *CatalogoUseCase) CrearProveedor(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Direccion) == "" || strings.TrimSpace(in.Telefono) == "" {
		return nil, domain.ErrInvalidInput
	}
	id, creado, err := movimientos.NewResolvedorProveedor(uc.proveedores).ResolverOCrear(ctx, entity.Proveedor{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
	})
	if err != nil {
		return nil, err
	}
	if !creado {
		return nil, domain.ErrDuplicate
	}
	return &dto.ProveedorResponse{ID: id, Nombre: in.Nombre, Direccion: in.Direccion, Telefono: in.Telefono}, nil
}

// ListListasPrecios lista las listas de precios.
func (uc *CatalogoUseCase) ListListasPrecios(ctx context.Context) ([]dto.ListaPrecioResponse, error) {
	listas, err := uc.listas.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListaPrecioResponse, len(listas))
	for i, l := range listas {
		out[i] = dto.ListaPrecioResponse{ID: l.ID, Nombre: l.Nombre, Porcentaje: l.Porcentaje}
	}
	return out, nil
}

// CrearListaPrecio crea una lista de precios.
func (uc *CatalogoUseCase) CrearListaPrecio(ctx context.Context, in dto.CreateListaPrecioRequest) (*dto.ListaPrecioResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	creada, err := uc.listas.Create(ctx, &entity.ListaPrecio{Nombre: in.Nombre, Porcentaje: in.Porcentaje})
	if err != nil {
		return nil, err
	}
	return &dto.ListaPrecioResponse{ID: creada.ID, Nombre: creada.Nombre, Porcentaje: creada.Porcentaje}, nil
}

// ListTiposResponsable lista los tipos de responsabilidad fiscal.
func (uc *CatalogoUseCase) ListTiposResponsable(ctx context.Context) ([]dto.TipoResponse, error) {
	tipos, err := uc.tipos.ListResponsables(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoResponse, len(tipos))
	for i, t := range tipos {
		out[i] = dto.TipoResponse{ID: t.ID, Nombre: t.Nombre}
	}
	return out, nil
}

// ListTiposComprobante lista los tipos de comprobante.
func (uc *CatalogoUseCase) ListTiposComprobante(ctx context.Context) ([]dto.TipoResponse, error) {
	tipos, err := uc.tipos.ListComprobantes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoResponse, len(tipos))
	for i, t := range tipos {
		out[i] = dto.TipoResponse{ID: t.ID, Nombre: t.Nombre}
	}
	return out, nil
}
