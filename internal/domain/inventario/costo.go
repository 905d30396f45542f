package inventario

import "github.com/shopspring/decimal"

// CostoPromedioPonderado implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = round2(((StockActual * CostoActual) + (CantEntrada * PrecioEntrada)) / (StockActual + CantEntrada))
//
// El redondeo a 2 decimales se aplica sobre el cociente final. Si la cantidad
// total es cero devuelve cero: caso degenerado definido, no un error.
// Función pura: mismo resultado para los mismos argumentos.
func CostoPromedioPonderado(stockActual, costoActual, cantEntrada, precioEntrada decimal.Decimal) decimal.Decimal {
	total := stockActual.Add(cantEntrada)
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(precioEntrada))
	return num.Div(total).Round(2)
}
