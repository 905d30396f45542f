package inventario_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcastano/almacen-admin/internal/domain/inventario"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Caso del manual: 10 unidades a $5.00 más 5 unidades a $8.00 → (50+40)/15 = 6.00.
func TestCostoPromedioPonderado_MezclaDeLotes(t *testing.T) {
	got := inventario.CostoPromedioPonderado(dec("10"), dec("5.00"), dec("5"), dec("8.00"))
	assert.True(t, dec("6.00").Equal(got), "esperado 6.00, obtenido %s", got)
}

// Primera entrada sobre stock cero: el costo es directamente el precio de entrada.
func TestCostoPromedioPonderado_StockInicialCero(t *testing.T) {
	got := inventario.CostoPromedioPonderado(decimal.Zero, decimal.Zero, dec("20"), dec("3.50"))
	assert.True(t, dec("3.50").Equal(got), "esperado 3.50, obtenido %s", got)
}

// Cantidad total cero: caso degenerado definido, devuelve 0 en vez de dividir por cero.
func TestCostoPromedioPonderado_TotalCero(t *testing.T) {
	got := inventario.CostoPromedioPonderado(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, got.IsZero())
}

// El cociente se redondea a 2 decimales.
func TestCostoPromedioPonderado_Redondeo(t *testing.T) {
	// (3*1.00 + 3*2.00) / 6 = 1.50 exacto; (1*1.00 + 2*2.00) / 3 = 1.666... → 1.67
	got := inventario.CostoPromedioPonderado(dec("1"), dec("1.00"), dec("2"), dec("2.00"))
	assert.True(t, dec("1.67").Equal(got), "esperado 1.67, obtenido %s", got)
}

func TestCostoPromedioPonderado_Tabla(t *testing.T) {
	casos := []struct {
		nombre                           string
		stock, costo, cantidad, precio   string
		esperado                         string
	}{
		{"entrada al mismo costo", "100", "2.50", "50", "2.50", "2.50"},
		{"entrada más cara sube el promedio", "10", "1.00", "10", "3.00", "2.00"},
		{"entrada gratis baja el promedio", "4", "10.00", "4", "0", "5.00"},
		{"cantidades fraccionarias", "2.5", "4.00", "2.5", "6.00", "5.00"},
		{"redondeo hacia arriba", "3", "1.00", "3", "1.01", "1.01"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := inventario.CostoPromedioPonderado(dec(c.stock), dec(c.costo), dec(c.cantidad), dec(c.precio))
			assert.True(t, dec(c.esperado).Equal(got), "esperado %s, obtenido %s", c.esperado, got)
		})
	}
}

// Función pura: dos llamadas con los mismos argumentos devuelven lo mismo.
func TestCostoPromedioPonderado_Deterministico(t *testing.T) {
	a := inventario.CostoPromedioPonderado(dec("7"), dec("1.23"), dec("11"), dec("4.56"))
	b := inventario.CostoPromedioPonderado(dec("7"), dec("1.23"), dec("11"), dec("4.56"))
	assert.True(t, a.Equal(b))
}
