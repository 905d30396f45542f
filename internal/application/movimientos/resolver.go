package movimientos

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNombre clave de comparación de nombres: minúsculas, sin tildes,
// sin espacios en los bordes. "Café" y "cafe" son el mismo artículo.
func NormalizarNombre(s string) string {
	limpio, _, err := transform.String(quitarTildes, strings.TrimSpace(s))
	if err != nil {
		limpio = strings.TrimSpace(s)
	}
	return strings.ToLower(limpio)
}

// ResolvedorProveedor resuelve un proveedor por nombre o lo crea si no existe.
// Aísla la regla "no hay dos entidades con el mismo nombre".
type ResolvedorProveedor struct {
	repo repository.ProveedorRepository
}

// NewResolvedorProveedor construye el resolvedor.
func NewResolvedorProveedor(repo repository.ProveedorRepository) *ResolvedorProveedor {
	return &ResolvedorProveedor{repo: repo}
}

// ResolverOCrear busca el proveedor por nombre normalizado; si no existe lo
// crea con los datos alternativos (dirección y teléfono obligatorios para crear).
// Devuelve el ID y si hubo creación.
func (r *ResolvedorProveedor) ResolverOCrear(ctx context.Context, alt entity.Proveedor) (int64, bool, error) {
	if strings.TrimSpace(alt.Nombre) == "" {
		return 0, false, domain.ErrInvalidInput
	}
	existentes, err := r.repo.List(ctx)
	if err != nil {
		return 0, false, err
	}
	clave := NormalizarNombre(alt.Nombre)
	for _, p := range existentes {
		if NormalizarNombre(p.Nombre) == clave {
			return p.ID, false, nil
		}
	}
	if strings.TrimSpace(alt.Direccion) == "" || strings.TrimSpace(alt.Telefono) == "" {
		return 0, false, domain.ErrInvalidInput
	}
	creado, err := r.repo.Create(ctx, &alt)
	if err != nil {
		return 0, false, err
	}
	return creado.ID, true, nil
}

// ResolvedorArticulo resuelve artículos por nombre sobre una lectura única del
// catálogo, creando los que falten. La lectura es de un momento dado: el envío
// trabaja sobre ese snapshot, igual que el resto del sistema (last-write-wins).
type ResolvedorArticulo struct {
	repo      repository.ArticuloRepository
	porNombre map[string]*entity.Articulo
}

// NewResolvedorArticulo carga el catálogo completo una sola vez.
func NewResolvedorArticulo(ctx context.Context, repo repository.ArticuloRepository) (*ResolvedorArticulo, error) {
	todos, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	porNombre := make(map[string]*entity.Articulo, len(todos))
	for _, a := range todos {
		porNombre[NormalizarNombre(a.Nombre)] = a
	}
	return &ResolvedorArticulo{repo: repo, porNombre: porNombre}, nil
}

// Resolver devuelve el artículo por nombre, o nil si no existe.
func (r *ResolvedorArticulo) Resolver(nombre string) *entity.Articulo {
	return r.porNombre[NormalizarNombre(nombre)]
}

// ResolverOCrear devuelve el artículo existente o lo crea con los datos
// alternativos (categoría y proveedor resueltos). Los nuevos nacen con stock y
// costo en cero; la entrada que los creó les fija ambos enseguida.
func (r *ResolvedorArticulo) ResolverOCrear(ctx context.Context, alt entity.Articulo) (*entity.Articulo, bool, error) {
	if existente := r.Resolver(alt.Nombre); existente != nil {
		return existente, false, nil
	}
	if strings.TrimSpace(alt.Nombre) == "" || alt.CategoriaID == 0 || alt.ProveedorID == 0 {
		return nil, false, domain.ErrInvalidInput
	}
	creado, err := r.repo.Create(ctx, &alt)
	if err != nil {
		return nil, false, err
	}
	r.porNombre[NormalizarNombre(creado.Nombre)] = creado
	return creado, true, nil
}

// Actualizar reemplaza el snapshot local tras un update remoto exitoso.
func (r *ResolvedorArticulo) Actualizar(a *entity.Articulo) {
	r.porNombre[NormalizarNombre(a.Nombre)] = a
}
