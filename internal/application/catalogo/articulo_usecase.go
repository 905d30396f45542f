package catalogo

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// ArticuloUseCase CRUD de artículos. Stock y costo solo cambian vía movimientos;
// acá se tocan los datos comerciales (nombre, precio de venta, descripción).
type ArticuloUseCase struct {
	repo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo}
}

// List devuelve los artículos, con filtro opcional por nombre (sin tildes ni
// mayúsculas) y por activos.
func (uc *ArticuloUseCase) List(ctx context.Context, q string, soloActivos bool) ([]dto.ArticuloResponse, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clave := movimientos.NormalizarNombre(q)
	out := make([]dto.ArticuloResponse, 0, len(todos))
	for _, a := range todos {
		if soloActivos && !a.Activo {
			continue
		}
		if clave != "" && !strings.Contains(movimientos.NormalizarNombre(a.Nombre), clave) {
			continue
		}
		out = append(out, articuloResponse(a))
	}
	return out, nil
}

// GetByID devuelve un artículo.
func (uc *ArticuloUseCase) GetByID(ctx context.Context, id int64) (*dto.ArticuloResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r := articuloResponse(a)
	return &r, nil
}

// Crear crea un artículo con stock y costo en cero. Rechaza nombres repetidos
// (comparación sin mayúsculas ni tildes).
func (uc *ArticuloUseCase) Crear(ctx context.Context, in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || in.CategoriaID == 0 || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existentes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	clave := movimientos.NormalizarNombre(in.Nombre)
	for _, a := range existentes {
		if movimientos.NormalizarNombre(a.Nombre) == clave {
			return nil, domain.ErrDuplicate
		}
	}
	creado, err := uc.repo.Create(ctx, &entity.Articulo{
		Nombre:      in.Nombre,
		CategoriaID: in.CategoriaID,
		ProveedorID: in.ProveedorID,
		PrecioVenta: in.PrecioVenta,
		Costo:       decimal.Zero,
		StockActual: decimal.Zero,
		Descripcion: in.Descripcion,
		Activo:      true,
	})
	if err != nil {
		return nil, err
	}
	r := articuloResponse(creado)
	return &r, nil
}

// Actualizar aplica el request sobre el último registro completo conocido y
// reenvía todo (el API solo soporta reemplazo completo). Stock, costo y
// versión viajan intactos desde la lectura.
func (uc *ArticuloUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	editado := *actual
	editado.Nombre = in.Nombre
	editado.CategoriaID = in.CategoriaID
	editado.ProveedorID = in.ProveedorID
	editado.PrecioVenta = in.PrecioVenta
	editado.Descripcion = in.Descripcion
	if in.Activo != nil {
		editado.Activo = *in.Activo
	}

	guardado, err := uc.repo.Update(ctx, &editado)
	if err != nil {
		return nil, err
	}
	r := articuloResponse(guardado)
	return &r, nil
}

// Eliminar baja lógica del artículo (el API remoto marca el flag).
func (uc *ArticuloUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func articuloResponse(a *entity.Articulo) dto.ArticuloResponse {
	return dto.ArticuloResponse{
		ID:          a.ID,
		Nombre:      a.Nombre,
		CategoriaID: a.CategoriaID,
		ProveedorID: a.ProveedorID,
		PrecioVenta: a.PrecioVenta,
		Costo:       a.Costo,
		StockActual: a.StockActual,
		Descripcion: a.Descripcion,
		Activo:      a.Activo,
	}
}
