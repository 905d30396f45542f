package movimientos

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

// EstadoCanasta estado del armado de un movimiento antes de enviarlo.
type EstadoCanasta int

const (
	CanastaVacia EstadoCanasta = iota
	CanastaArmando
	CanastaLista // al menos una línea válida
	CanastaEnviando
	CanastaConfirmada
	CanastaFallida // el envío falló; las líneas se conservan para reintentar
)

// String para logs y respuestas.
func (e EstadoCanasta) String() string {
	switch e {
	case CanastaVacia:
		return "vacia"
	case CanastaArmando:
		return "armando"
	case CanastaLista:
		return "lista"
	case CanastaEnviando:
		return "enviando"
	case CanastaConfirmada:
		return "confirmada"
	case CanastaFallida:
		return "fallida"
	}
	return "desconocido"
}

// LineaCanasta una línea staged: artículo, cantidad y precio unitario.
// Para entradas con artículo inexistente, CategoriaID, PrecioVenta y
// Descripcion alimentan la creación implícita. Para salidas, StockConocido es
// el stock leído al momento de agregar (se revalida contra el stock vivo al enviar).
type LineaCanasta struct {
	ArticuloID     int64 // 0 = artículo aún no existe (solo entradas)
	Nombre         string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal

	CategoriaID int64
	PrecioVenta decimal.Decimal
	Descripcion string

	StockConocido decimal.Decimal
}

// Total devuelve Cantidad * PrecioUnitario.
func (l LineaCanasta) Total() decimal.Decimal {
	return l.Cantidad.Mul(l.PrecioUnitario)
}

// Canasta staging de líneas de un movimiento, con su máquina de estados.
// No es segura para uso concurrente: modela el formulario de un único usuario.
type Canasta struct {
	tipo   string // entity.TipoEntrada | entity.TipoSalida
	lineas []LineaCanasta
	estado EstadoCanasta
}

// NewCanasta crea una canasta vacía del tipo indicado.
func NewCanasta(tipo string) (*Canasta, error) {
	if tipo != entity.TipoEntrada && tipo != entity.TipoSalida {
		return nil, domain.ErrInvalidInput
	}
	return &Canasta{tipo: tipo, estado: CanastaVacia}, nil
}

// Tipo devuelve ENTRADA o SALIDA.
func (c *Canasta) Tipo() string { return c.tipo }

// Estado devuelve el estado actual.
func (c *Canasta) Estado() EstadoCanasta { return c.estado }

// Lineas devuelve una copia de las líneas en orden de agregado.
func (c *Canasta) Lineas() []LineaCanasta {
	out := make([]LineaCanasta, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// Agregar valida la línea y la suma a la canasta. Rechaza sin llamada de red:
// cantidad no positiva, precio negativo, artículo duplicado (comparación de
// nombre sin mayúsculas ni tildes) y, en salidas, cantidad mayor al stock conocido.
func (c *Canasta) Agregar(l LineaCanasta) error {
	switch c.estado {
	case CanastaEnviando:
		return domain.ErrSubmitInFlight
	case CanastaConfirmada:
		// canasta ya confirmada: arranca una nueva desde cero
		c.lineas = nil
		c.estado = CanastaVacia
	}

	if strings.TrimSpace(l.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	if !l.Cantidad.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if l.PrecioUnitario.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	clave := NormalizarNombre(l.Nombre)
	for _, existente := range c.lineas {
		if NormalizarNombre(existente.Nombre) == clave {
			return domain.ErrDuplicate
		}
	}
	if c.tipo == entity.TipoSalida {
		if l.ArticuloID == 0 {
			return domain.ErrInvalidInput
		}
		if l.Cantidad.GreaterThan(l.StockConocido) {
			return domain.ErrInsufficientStock
		}
	}

	c.lineas = append(c.lineas, l)
	c.estado = CanastaLista
	return nil
}

// Quitar elimina la línea del artículo indicado. Si la canasta queda sin
// líneas vuelve a estado armando.
func (c *Canasta) Quitar(nombre string) {
	if c.estado == CanastaEnviando {
		return
	}
	clave := NormalizarNombre(nombre)
	for i, l := range c.lineas {
		if NormalizarNombre(l.Nombre) == clave {
			c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
			break
		}
	}
	if len(c.lineas) == 0 && c.estado == CanastaLista {
		c.estado = CanastaArmando
	}
}

// iniciarEnvio pasa a enviando. Solo un envío en vuelo a la vez: un segundo
// intento mientras está enviando se rechaza. Se puede reenviar tras un fallo.
func (c *Canasta) iniciarEnvio() error {
	if c.estado == CanastaEnviando {
		return domain.ErrSubmitInFlight
	}
	if len(c.lineas) == 0 {
		return domain.ErrEmptyBasket
	}
	if c.estado != CanastaLista && c.estado != CanastaFallida {
		return domain.ErrEmptyBasket
	}
	c.estado = CanastaEnviando
	return nil
}

// confirmar: el envío terminó bien; la canasta se vacía.
func (c *Canasta) confirmar() {
	c.lineas = nil
	c.estado = CanastaConfirmada
}

// fallar: el envío falló. Las líneas quedan para que el usuario reintente;
// los efectos remotos ya aplicados NO se deshacen.
func (c *Canasta) fallar() {
	c.estado = CanastaFallida
}
