package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// MovimientoHandler maneja el alta de entradas y salidas y el listado de
// movimientos (protegido). Arma la canasta a partir del cuerpo y delega la
// secuencia de escrituras al caso de uso.
type MovimientoHandler struct {
	entradas  *movimientos.RegistrarEntradaUseCase
	salidas   *movimientos.RegistrarSalidaUseCase
	listar    *movimientos.ListarUseCase
	articulos repository.ArticuloRepository
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(
	entradas *movimientos.RegistrarEntradaUseCase,
	salidas *movimientos.RegistrarSalidaUseCase,
	listar *movimientos.ListarUseCase,
	articulos repository.ArticuloRepository,
) *MovimientoHandler {
	return &MovimientoHandler{entradas: entradas, salidas: salidas, listar: listar, articulos: articulos}
}

// RegistrarEntrada godoc
// @Summary      Registrar una entrada de mercadería
// @Description  Crea proveedor y artículos inexistentes, crea la cabecera y por
//
//	línea el detalle, recalcula el costo promedio ponderado y actualiza
//	stock y costo del artículo. Sin rollback: ante un fallo responde 502
//	con los pasos ya aplicados.
//
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntradaRequest  true  "proveedor, comprobante y líneas"
// @Success      201   {object}  dto.EnvioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movimientos/entradas [post]
func (h *MovimientoHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var in dto.EntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	canasta, err := movimientos.NewCanasta(entity.TipoEntrada)
	if err != nil {
		return responderError(c, err)
	}
	for _, l := range in.Lineas {
		err := canasta.Agregar(movimientos.LineaCanasta{
			Nombre:         l.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			CategoriaID:    l.CategoriaID,
			PrecioVenta:    l.PrecioVenta,
			Descripcion:    l.Descripcion,
		})
		if err != nil {
			return responderError(c, err)
		}
	}

	res, err := h.entradas.Ejecutar(c.Context(), movimientos.EntradaInput{
		Proveedor:          in.Proveedor,
		DireccionProveedor: in.DireccionProveedor,
		TelefonoProveedor:  in.TelefonoProveedor,
		NumComprobante:     in.NumComprobante,
		Fecha:              in.Fecha,
		Usuario:            GetUsuario(c),
	}, canasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envioResponse(res))
}

// RegistrarSalida godoc
// @Summary      Registrar una salida de mercadería
// @Description  Re-chequea el stock vivo de todas las líneas antes de escribir;
//
//	descuenta stock sin tocar el costo promedio.
//
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalidaRequest  true  "destino, motivo, comprobante y líneas"
// @Success      201   {object}  dto.EnvioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movimientos/salidas [post]
func (h *MovimientoHandler) RegistrarSalida(c *fiber.Ctx) error {
	var in dto.SalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	canasta, err := movimientos.NewCanasta(entity.TipoSalida)
	if err != nil {
		return responderError(c, err)
	}
	for _, l := range in.Lineas {
		// El stock conocido se lee acá; el caso de uso lo revalida contra
		// el stock vivo antes de escribir.
		art, err := h.articulos.GetByID(c.Context(), l.ArticuloID)
		if err != nil {
			return responderError(c, err)
		}
		precio := l.PrecioUnitario
		if precio.IsZero() {
			precio = art.PrecioVenta
		}
		err = canasta.Agregar(movimientos.LineaCanasta{
			ArticuloID:     art.ID,
			Nombre:         art.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: precio,
			StockConocido:  art.StockActual,
		})
		if err != nil {
			return responderError(c, err)
		}
	}

	res, err := h.salidas.Ejecutar(c.Context(), movimientos.SalidaInput{
		Destino:        in.Destino,
		Motivo:         in.Motivo,
		NumComprobante: in.NumComprobante,
		Fecha:          in.Fecha,
		Usuario:        GetUsuario(c),
	}, canasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(envioResponse(res))
}

// List godoc
// @Summary      Listar movimientos con sus líneas
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  false  "ENTRADA | SALIDA"
// @Param        desde  query  string  false  "Fecha desde (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha hasta (2006-01-02)"
// @Success      200  {array}  dto.RegistroResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	f := movimientos.FiltroMovimientos{Tipo: c.Query("tipo")}
	var err error
	if f.Desde, err = parseFecha(c.Query("desde")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "desde inválida (2006-01-02)"})
	}
	if f.Hasta, err = parseFecha(c.Query("hasta")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "hasta inválida (2006-01-02)"})
	}
	out, err := h.listar.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func envioResponse(res *movimientos.ResultadoEnvio) dto.EnvioResponse {
	out := dto.EnvioResponse{RegistroID: res.RegistroID}
	for _, p := range res.Completados {
		out.Pasos = append(out.Pasos, dto.PasoAplicado{Paso: string(p.Paso), ID: p.ID, Recurso: p.Recurso})
	}
	for _, a := range res.Advertencias {
		out.Advertencias = append(out.Advertencias, dto.AdvertenciaResponse{
			ArticuloID:  a.ArticuloID,
			Articulo:    a.Articulo,
			CostoNuevo:  a.CostoNuevo,
			PrecioVenta: a.PrecioVenta,
		})
	}
	return out
}
