package movimientos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

// SalidaInput cabecera de una salida de mercadería.
type SalidaInput struct {
	Destino        string
	Motivo         string
	NumComprobante string
	Fecha          time.Time
	Usuario        string
}

// RegistrarSalidaUseCase ejecuta la secuencia de una salida (SALIDA): re-chequeo
// de stock vivo para todas las líneas, cabecera, y por línea detalle + resta de
// stock. El costo promedio nunca se toca en salidas.
type RegistrarSalidaUseCase struct {
	articulos repository.ArticuloRepository
	registros repository.RegistroRepository
	log       *logger.Logger
}

// NewRegistrarSalidaUseCase construye el caso de uso.
func NewRegistrarSalidaUseCase(
	articulos repository.ArticuloRepository,
	registros repository.RegistroRepository,
	log *logger.Logger,
) *RegistrarSalidaUseCase {
	return &RegistrarSalidaUseCase{articulos: articulos, registros: registros, log: log}
}

// Ejecutar valida en local, re-lee el stock vivo de cada línea y recién ahí
// escribe. Si alguna línea quedó sin stock entre el armado y el envío (el
// stock pudo cambiar en el medio), se rechaza todo antes de crear la cabecera.
func (uc *RegistrarSalidaUseCase) Ejecutar(ctx context.Context, in SalidaInput, c *Canasta) (*ResultadoEnvio, error) {
	if c == nil || c.Tipo() != entity.TipoSalida {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Destino) == "" || strings.TrimSpace(in.Motivo) == "" ||
		strings.TrimSpace(in.NumComprobante) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := c.iniciarEnvio(); err != nil {
		return nil, err
	}
	if in.Fecha.IsZero() {
		in.Fecha = time.Now()
	}

	res := &ResultadoEnvio{}
	lineas := c.Lineas()

	// Re-chequeo contra el stock vivo ANTES de cualquier escritura: si una
	// sola línea no alcanza, no se crea ni la cabecera.
	vivos := make([]*entity.Articulo, len(lineas))
	for i, l := range lineas {
		art, err := uc.articulos.GetByID(ctx, l.ArticuloID)
		if err != nil {
			return nil, uc.abortar(c, res, PasoActualizarArticulo, l.Nombre, err)
		}
		if art.StockActual.LessThan(l.Cantidad) {
			c.fallar()
			return nil, fmt.Errorf("%w: %q tiene %s y se pidieron %s",
				domain.ErrInsufficientStock, art.Nombre, art.StockActual, l.Cantidad)
		}
		vivos[i] = art
	}

	reg, err := uc.registros.CreateCabecera(ctx, &entity.Registro{
		Tipo:           entity.TipoSalida,
		Destino:        in.Destino,
		Motivo:         in.Motivo,
		NumComprobante: in.NumComprobante,
		Fecha:          in.Fecha,
		Usuario:        in.Usuario,
	})
	if err != nil {
		return nil, uc.abortar(c, res, PasoCrearCabecera, in.NumComprobante, err)
	}
	res.RegistroID = reg.ID
	res.completar(PasoCrearCabecera, reg.ID, in.NumComprobante)

	for i, l := range lineas {
		art := vivos[i]

		det, err := uc.registros.CreateDetalle(ctx, &entity.Detalle{
			RegistroID:     reg.ID,
			ArticuloID:     art.ID,
			Articulo:       art.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Total:          l.Total(),
		})
		if err != nil {
			return nil, uc.abortar(c, res, PasoCrearDetalle, art.Nombre, err)
		}
		res.completar(PasoCrearDetalle, det.ID, art.Nombre)

		// Solo baja el stock; costo y el resto del registro viajan intactos.
		actualizado := art.ConStock(art.StockActual.Sub(l.Cantidad))
		guardado, err := uc.articulos.Update(ctx, &actualizado)
		if err != nil {
			return nil, uc.abortar(c, res, PasoActualizarArticulo, art.Nombre, err)
		}
		res.completar(PasoActualizarArticulo, guardado.ID, guardado.Nombre)
	}

	c.confirmar()
	uc.log.Info().Int64("registro_id", reg.ID).Str("destino", in.Destino).Msg("salida registrada")
	return res, nil
}

func (uc *RegistrarSalidaUseCase) abortar(c *Canasta, res *ResultadoEnvio, paso Paso, recurso string, err error) error {
	c.fallar()
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrNotFound) {
		return err
	}
	uc.log.Error().Err(err).Str("paso", string(paso)).Str("recurso", recurso).
		Int("pasos_aplicados", len(res.Completados)).Msg("envío de movimiento interrumpido")
	return &ErrEscrituraRemota{Paso: paso, Recurso: recurso, Completados: res.Completados, Err: err}
}
