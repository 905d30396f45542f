package movimientos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/inventario"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

// EntradaInput cabecera de una entrada de mercadería. Dirección y teléfono
// solo se usan si hay que crear el proveedor.
type EntradaInput struct {
	Proveedor          string
	DireccionProveedor string
	TelefonoProveedor  string
	NumComprobante     string
	Fecha              time.Time
	Usuario            string
}

// RegistrarEntradaUseCase ejecuta la secuencia de una entrada (ENTRADA):
// resolver/crear proveedor, resolver/crear artículos, crear cabecera, y por
// línea crear detalle + recalcular costo promedio + persistir stock y costo.
// Cada paso es una llamada de red independiente; no hay rollback: ante un
// fallo se devuelve ErrEscrituraRemota con los pasos ya aplicados.
type RegistrarEntradaUseCase struct {
	articulos   repository.ArticuloRepository
	proveedores repository.ProveedorRepository
	registros   repository.RegistroRepository
	log         *logger.Logger
}

// NewRegistrarEntradaUseCase construye el caso de uso.
func NewRegistrarEntradaUseCase(
	articulos repository.ArticuloRepository,
	proveedores repository.ProveedorRepository,
	registros repository.RegistroRepository,
	log *logger.Logger,
) *RegistrarEntradaUseCase {
	return &RegistrarEntradaUseCase{
		articulos:   articulos,
		proveedores: proveedores,
		registros:   registros,
		log:         log,
	}
}

// Ejecutar valida en local, marca la canasta como enviando y corre la
// secuencia de escrituras en orden. En éxito la canasta se confirma y vacía;
// en fallo queda en fallida con sus líneas intactas para reintentar.
func (uc *RegistrarEntradaUseCase) Ejecutar(ctx context.Context, in EntradaInput, c *Canasta) (*ResultadoEnvio, error) {
	// Validación local: ninguna escritura sale si algo de esto falla.
	if c == nil || c.Tipo() != entity.TipoEntrada {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Proveedor) == "" || strings.TrimSpace(in.NumComprobante) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := c.iniciarEnvio(); err != nil {
		return nil, err
	}
	if in.Fecha.IsZero() {
		in.Fecha = time.Now()
	}

	res := &ResultadoEnvio{}

	// 1) Proveedor: resolver por nombre o crear.
	provID, creado, err := NewResolvedorProveedor(uc.proveedores).ResolverOCrear(ctx, entity.Proveedor{
		Nombre:    in.Proveedor,
		Direccion: in.DireccionProveedor,
		Telefono:  in.TelefonoProveedor,
	})
	if err != nil {
		return nil, uc.abortar(c, res, PasoCrearProveedor, in.Proveedor, err)
	}
	if creado {
		res.completar(PasoCrearProveedor, provID, in.Proveedor)
		uc.log.Info().Str("proveedor", in.Proveedor).Int64("id", provID).Msg("proveedor creado")
	}

	// 2) Artículos: snapshot del catálogo y creación de los que falten.
	resolvedor, err := NewResolvedorArticulo(ctx, uc.articulos)
	if err != nil {
		return nil, uc.abortar(c, res, PasoCrearArticulo, "", err)
	}
	for _, l := range c.Lineas() {
		art, nuevo, err := resolvedor.ResolverOCrear(ctx, entity.Articulo{
			Nombre:      l.Nombre,
			CategoriaID: l.CategoriaID,
			ProveedorID: provID,
			PrecioVenta: l.PrecioVenta,
			Costo:       decimal.Zero,
			StockActual: decimal.Zero,
			Descripcion: l.Descripcion,
			Activo:      true,
		})
		if err != nil {
			return nil, uc.abortar(c, res, PasoCrearArticulo, l.Nombre, err)
		}
		if nuevo {
			res.completar(PasoCrearArticulo, art.ID, art.Nombre)
		}
	}

	// 3) Cabecera.
	reg, err := uc.registros.CreateCabecera(ctx, &entity.Registro{
		Tipo:           entity.TipoEntrada,
		ProveedorID:    provID,
		Proveedor:      in.Proveedor,
		NumComprobante: in.NumComprobante,
		Fecha:          in.Fecha,
		Usuario:        in.Usuario,
	})
	if err != nil {
		return nil, uc.abortar(c, res, PasoCrearCabecera, in.NumComprobante, err)
	}
	res.RegistroID = reg.ID
	res.completar(PasoCrearCabecera, reg.ID, in.NumComprobante)

	// 4) Líneas en orden de canasta: detalle, recálculo de costo, stock.
	// La canasta rechaza artículos duplicados, así que cada artículo se toca
	// a lo sumo una vez por entrada.
	for _, l := range c.Lineas() {
		art := resolvedor.Resolver(l.Nombre)

		nuevoCosto := inventario.CostoPromedioPonderado(art.StockActual, art.Costo, l.Cantidad, l.PrecioUnitario)

		det, err := uc.registros.CreateDetalle(ctx, &entity.Detalle{
			RegistroID:     reg.ID,
			ArticuloID:     art.ID,
			Articulo:       art.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Total:          l.Total(),
			CostoBase:      nuevoCosto,
		})
		if err != nil {
			return nil, uc.abortar(c, res, PasoCrearDetalle, art.Nombre, err)
		}
		res.completar(PasoCrearDetalle, det.ID, art.Nombre)

		// La comparación usa el precio de venta leído antes del update; el
		// precio de venta jamás se ajusta automáticamente.
		if nuevoCosto.GreaterThan(art.PrecioVenta) {
			res.Advertencias = append(res.Advertencias, Advertencia{
				ArticuloID:  art.ID,
				Articulo:    art.Nombre,
				CostoNuevo:  nuevoCosto,
				PrecioVenta: art.PrecioVenta,
			})
			uc.log.Warn().Str("articulo", art.Nombre).
				Str("costo_nuevo", nuevoCosto.String()).
				Str("precio_venta", art.PrecioVenta.String()).
				Msg("el costo recalculado supera el precio de venta")
		}

		// Reemplazo completo partiendo del último registro conocido: solo
		// cambian stock y costo, el resto viaja intacto.
		actualizado := art.ConStock(art.StockActual.Add(l.Cantidad)).ConCosto(nuevoCosto)
		guardado, err := uc.articulos.Update(ctx, &actualizado)
		if err != nil {
			return nil, uc.abortar(c, res, PasoActualizarArticulo, art.Nombre, err)
		}
		res.completar(PasoActualizarArticulo, guardado.ID, guardado.Nombre)
		resolvedor.Actualizar(guardado)
	}

	c.confirmar()
	uc.log.Info().Int64("registro_id", reg.ID).Int("lineas", len(res.Completados)).Msg("entrada registrada")
	return res, nil
}

// abortar marca la canasta como fallida y arma el error de salida. Los errores
// de validación local pasan tal cual; cualquier otro se envuelve con los pasos
// que sí quedaron aplicados (no hay compensación).
func (uc *RegistrarEntradaUseCase) abortar(c *Canasta, res *ResultadoEnvio, paso Paso, recurso string, err error) error {
	c.fallar()
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInsufficientStock) {
		return err
	}
	uc.log.Error().Err(err).Str("paso", string(paso)).Str("recurso", recurso).
		Int("pasos_aplicados", len(res.Completados)).Msg("envío de movimiento interrumpido")
	return &ErrEscrituraRemota{Paso: paso, Recurso: recurso, Completados: res.Completados, Err: err}
}
