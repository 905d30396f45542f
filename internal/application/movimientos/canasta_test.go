package movimientos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNormalizarNombre(t *testing.T) {
	assert.Equal(t, "cafe torrado", NormalizarNombre("  Café Torrado "))
	assert.Equal(t, "nandu", NormalizarNombre("ÑANDÚ"))
	assert.Equal(t, NormalizarNombre("Ferretería López"), NormalizarNombre("ferreteria lopez"))
}

func TestCanasta_TipoInvalido(t *testing.T) {
	_, err := NewCanasta("TRASLADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCanasta_AgregarValidaciones(t *testing.T) {
	c, err := NewCanasta(entity.TipoEntrada)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Agregar(LineaCanasta{Nombre: "", Cantidad: d("1")}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.Agregar(LineaCanasta{Nombre: "X", Cantidad: d("0")}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.Agregar(LineaCanasta{Nombre: "X", Cantidad: d("-1")}), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.Agregar(LineaCanasta{Nombre: "X", Cantidad: d("1"), PrecioUnitario: d("-0.5")}), domain.ErrInvalidInput)
	assert.Equal(t, CanastaVacia, c.Estado())
}

// Artículo repetido en la misma canasta: rechazo local, sin red. La
// comparación ignora mayúsculas y tildes.
func TestCanasta_RechazaDuplicadosPorNombre(t *testing.T) {
	c, _ := NewCanasta(entity.TipoEntrada)
	require.NoError(t, c.Agregar(LineaCanasta{Nombre: "Café Torrado", Cantidad: d("1"), PrecioUnitario: d("2")}))

	err := c.Agregar(LineaCanasta{Nombre: "cafe torrado", Cantidad: d("3"), PrecioUnitario: d("2")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, c.Lineas(), 1)
}

// Salidas: el artículo debe existir y la cantidad no puede superar el stock
// conocido al momento de agregar.
func TestCanasta_SalidaValidaStockConocido(t *testing.T) {
	c, _ := NewCanasta(entity.TipoSalida)

	err := c.Agregar(LineaCanasta{Nombre: "Arena", Cantidad: d("5"), StockConocido: d("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "salida sin ArticuloID")

	err = c.Agregar(LineaCanasta{ArticuloID: 1, Nombre: "Arena", Cantidad: d("11"), StockConocido: d("10")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, c.Agregar(LineaCanasta{ArticuloID: 1, Nombre: "Arena", Cantidad: d("10"), StockConocido: d("10")}))
	assert.Equal(t, CanastaLista, c.Estado())
}

func TestCanasta_MaquinaDeEstados(t *testing.T) {
	c, _ := NewCanasta(entity.TipoEntrada)
	assert.Equal(t, CanastaVacia, c.Estado())

	// sin líneas no hay envío
	assert.ErrorIs(t, c.iniciarEnvio(), domain.ErrEmptyBasket)

	require.NoError(t, c.Agregar(LineaCanasta{Nombre: "A", Cantidad: d("1"), PrecioUnitario: d("1")}))
	assert.Equal(t, CanastaLista, c.Estado())

	require.NoError(t, c.iniciarEnvio())
	assert.Equal(t, CanastaEnviando, c.Estado())

	// solo un envío en vuelo: el reintento mientras envía se ignora
	assert.ErrorIs(t, c.iniciarEnvio(), domain.ErrSubmitInFlight)
	assert.ErrorIs(t, c.Agregar(LineaCanasta{Nombre: "B", Cantidad: d("1")}), domain.ErrSubmitInFlight)

	// fallo: las líneas quedan y se puede reenviar
	c.fallar()
	assert.Equal(t, CanastaFallida, c.Estado())
	assert.Len(t, c.Lineas(), 1)
	require.NoError(t, c.iniciarEnvio())

	// éxito: la canasta se vacía
	c.confirmar()
	assert.Equal(t, CanastaConfirmada, c.Estado())
	assert.Empty(t, c.Lineas())

	// agregar tras confirmar arranca una canasta nueva
	require.NoError(t, c.Agregar(LineaCanasta{Nombre: "C", Cantidad: d("2"), PrecioUnitario: d("1")}))
	assert.Equal(t, CanastaLista, c.Estado())
	assert.Len(t, c.Lineas(), 1)
}

func TestCanasta_QuitarVuelveAArmando(t *testing.T) {
	c, _ := NewCanasta(entity.TipoEntrada)
	require.NoError(t, c.Agregar(LineaCanasta{Nombre: "A", Cantidad: d("1"), PrecioUnitario: d("1")}))

	c.Quitar("a") // mismo nombre normalizado
	assert.Empty(t, c.Lineas())
	assert.Equal(t, CanastaArmando, c.Estado())
	assert.ErrorIs(t, c.iniciarEnvio(), domain.ErrEmptyBasket)
}

func TestLineaCanasta_Total(t *testing.T) {
	l := LineaCanasta{Cantidad: d("3"), PrecioUnitario: d("2.50")}
	assert.True(t, d("7.50").Equal(l.Total()))
}
