package movimientos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

func entradaUC(arts *articuloRepoMock, provs *proveedorRepoMock, regs *registroRepoMock) *movimientos.RegistrarEntradaUseCase {
	return movimientos.NewRegistrarEntradaUseCase(arts, provs, regs, logger.Nop())
}

func canastaEntrada(t *testing.T, lineas ...movimientos.LineaCanasta) *movimientos.Canasta {
	t.Helper()
	c, err := movimientos.NewCanasta(entity.TipoEntrada)
	require.NoError(t, err)
	for _, l := range lineas {
		require.NoError(t, c.Agregar(l))
	}
	return c
}

// Entrada con dos artículos existentes: una cabecera, dos detalles, y cada
// artículo con stock sumado y costo promedio recalculado.
func TestEntrada_DosArticulos(t *testing.T) {
	arts := newArticuloRepoMock(
		&entity.Articulo{ID: 1, Nombre: "Tornillos", CategoriaID: 1, ProveedorID: 9, PrecioVenta: dec("10.00"), Costo: dec("5.00"), StockActual: dec("10"), Activo: true},
		&entity.Articulo{ID: 2, Nombre: "Tuercas", CategoriaID: 1, ProveedorID: 9, PrecioVenta: dec("4.00"), Costo: dec("0"), StockActual: dec("0"), Activo: true},
	)
	provs := newProveedorRepoMock(&entity.Proveedor{ID: 9, Nombre: "Ferretera Sur"})
	regs := &registroRepoMock{}

	c := canastaEntrada(t,
		movimientos.LineaCanasta{Nombre: "Tornillos", Cantidad: dec("5"), PrecioUnitario: dec("8.00")},
		movimientos.LineaCanasta{Nombre: "Tuercas", Cantidad: dec("20"), PrecioUnitario: dec("3.50")},
	)

	res, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:      "Ferretera Sur",
		NumComprobante: "R-0001",
		Usuario:        "admin",
	}, c)
	require.NoError(t, err)

	require.Len(t, regs.Cabeceras, 1)
	assert.Equal(t, entity.TipoEntrada, regs.Cabeceras[0].Tipo)
	assert.Equal(t, int64(9), regs.Cabeceras[0].ProveedorID)
	require.Len(t, regs.Detalles, 2)
	assert.Equal(t, regs.Cabeceras[0].ID, regs.Detalles[0].RegistroID)

	// (10*5 + 5*8) / 15 = 6.00
	tornillos, _ := arts.GetByID(context.Background(), 1)
	assert.True(t, dec("15").Equal(tornillos.StockActual), "stock %s", tornillos.StockActual)
	assert.True(t, dec("6.00").Equal(tornillos.Costo), "costo %s", tornillos.Costo)

	// primera entrada sobre stock cero: costo = precio de entrada
	tuercas, _ := arts.GetByID(context.Background(), 2)
	assert.True(t, dec("20").Equal(tuercas.StockActual))
	assert.True(t, dec("3.50").Equal(tuercas.Costo))

	assert.Equal(t, regs.Cabeceras[0].ID, res.RegistroID)
	assert.Empty(t, res.Advertencias)
	assert.Equal(t, movimientos.CanastaConfirmada, c.Estado())
	assert.Empty(t, c.Lineas())
}

// Proveedor y artículo inexistentes: se crean primero y la entrada sigue.
func TestEntrada_CreaProveedorYArticulo(t *testing.T) {
	arts := newArticuloRepoMock()
	provs := newProveedorRepoMock()
	regs := &registroRepoMock{}

	c := canastaEntrada(t, movimientos.LineaCanasta{
		Nombre:         "Cemento x 50kg",
		Cantidad:       dec("12"),
		PrecioUnitario: dec("7.50"),
		CategoriaID:    3,
		PrecioVenta:    dec("11.00"),
		Descripcion:    "bolsa 50kg",
	})

	res, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:          "Corralón Norte",
		DireccionProveedor: "Av. Mitre 1200",
		TelefonoProveedor:  "0341-4556677",
		NumComprobante:     "R-0002",
		Usuario:            "admin",
	}, c)
	require.NoError(t, err)

	require.Len(t, provs.Creates, 1)
	assert.Equal(t, "Corralón Norte", provs.Creates[0].Nombre)
	require.Len(t, arts.Creates, 1)
	assert.Equal(t, provs.Creates[0].ID, arts.Creates[0].ProveedorID)

	creado, _ := arts.GetByID(context.Background(), arts.Creates[0].ID)
	assert.True(t, dec("12").Equal(creado.StockActual))
	assert.True(t, dec("7.50").Equal(creado.Costo))

	pasos := make(map[movimientos.Paso]int)
	for _, p := range res.Completados {
		pasos[p.Paso]++
	}
	assert.Equal(t, 1, pasos[movimientos.PasoCrearProveedor])
	assert.Equal(t, 1, pasos[movimientos.PasoCrearArticulo])
	assert.Equal(t, 1, pasos[movimientos.PasoCrearCabecera])
	assert.Equal(t, 1, pasos[movimientos.PasoCrearDetalle])
	assert.Equal(t, 1, pasos[movimientos.PasoActualizarArticulo])
}

// El nombre del proveedor se resuelve sin distinguir mayúsculas ni tildes:
// no se crea un duplicado.
func TestEntrada_ProveedorExistentePorNombreNormalizado(t *testing.T) {
	arts := newArticuloRepoMock(
		&entity.Articulo{ID: 1, Nombre: "Clavos", PrecioVenta: dec("2.00"), StockActual: dec("1"), Activo: true},
	)
	provs := newProveedorRepoMock(&entity.Proveedor{ID: 4, Nombre: "Ferretería López"})
	regs := &registroRepoMock{}

	c := canastaEntrada(t, movimientos.LineaCanasta{Nombre: "Clavos", Cantidad: dec("1"), PrecioUnitario: dec("1.00")})

	_, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:      "ferreteria lopez",
		NumComprobante: "R-0003",
	}, c)
	require.NoError(t, err)
	assert.Empty(t, provs.Creates)
	assert.Equal(t, int64(4), regs.Cabeceras[0].ProveedorID)
}

// Costo recalculado por encima del precio de venta: advertencia no bloqueante,
// la entrada se confirma igual y el precio de venta no se toca.
func TestEntrada_AdvertenciaCostoSobrePrecioVenta(t *testing.T) {
	arts := newArticuloRepoMock(
		&entity.Articulo{ID: 1, Nombre: "Lija", PrecioVenta: dec("5.00"), Costo: dec("0"), StockActual: dec("0"), Activo: true},
	)
	provs := newProveedorRepoMock(&entity.Proveedor{ID: 1, Nombre: "Abrasivos SA"})
	regs := &registroRepoMock{}

	c := canastaEntrada(t, movimientos.LineaCanasta{Nombre: "Lija", Cantidad: dec("10"), PrecioUnitario: dec("9.00")})

	res, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:      "Abrasivos SA",
		NumComprobante: "R-0004",
	}, c)
	require.NoError(t, err)

	require.Len(t, res.Advertencias, 1)
	assert.True(t, dec("9.00").Equal(res.Advertencias[0].CostoNuevo))
	assert.True(t, dec("5.00").Equal(res.Advertencias[0].PrecioVenta))

	lija, _ := arts.GetByID(context.Background(), 1)
	assert.True(t, dec("10").Equal(lija.StockActual), "la entrada igual se confirma")
	assert.True(t, dec("9.00").Equal(lija.Costo))
	assert.True(t, dec("5.00").Equal(lija.PrecioVenta), "el precio de venta no se ajusta")
}

// El update de stock/costo reenvía el registro completo sin pisar campos no
// relacionados: descripción y versión viajan intactos.
func TestEntrada_UpdateNoPisaCamposNoRelacionados(t *testing.T) {
	arts := newArticuloRepoMock(
		&entity.Articulo{
			ID: 1, Nombre: "Pintura látex", CategoriaID: 7, ProveedorID: 2,
			PrecioVenta: dec("30.00"), Costo: dec("12.00"), StockActual: dec("3"),
			Descripcion: "balde 20 litros", Activo: true, Version: 41,
		},
	)
	provs := newProveedorRepoMock(&entity.Proveedor{ID: 2, Nombre: "Pinturerías Centro"})
	regs := &registroRepoMock{}

	c := canastaEntrada(t, movimientos.LineaCanasta{Nombre: "Pintura látex", Cantidad: dec("2"), PrecioUnitario: dec("15.00")})

	_, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:      "Pinturerías Centro",
		NumComprobante: "R-0005",
	}, c)
	require.NoError(t, err)

	require.Len(t, arts.Updates, 1)
	enviado := arts.Updates[0]
	assert.Equal(t, "balde 20 litros", enviado.Descripcion)
	assert.Equal(t, int64(7), enviado.CategoriaID)
	assert.Equal(t, int64(41), enviado.Version)
	assert.True(t, dec("30.00").Equal(enviado.PrecioVenta))
	assert.True(t, enviado.Activo)
}

// Fallo remoto a mitad de secuencia: no hay rollback, el error expone los
// pasos que sí quedaron aplicados y la canasta conserva sus líneas.
func TestEntrada_FalloRemotoExponePasosAplicados(t *testing.T) {
	arts := newArticuloRepoMock(
		&entity.Articulo{ID: 1, Nombre: "Cable", PrecioVenta: dec("3.00"), StockActual: dec("5"), Activo: true},
		&entity.Articulo{ID: 2, Nombre: "Ficha", PrecioVenta: dec("1.00"), StockActual: dec("5"), Activo: true},
	)
	provs := newProveedorRepoMock(&entity.Proveedor{ID: 1, Nombre: "Electro SRL"})
	regs := &registroRepoMock{FailDetalleDesde: 2}

	c := canastaEntrada(t,
		movimientos.LineaCanasta{Nombre: "Cable", Cantidad: dec("1"), PrecioUnitario: dec("2.00")},
		movimientos.LineaCanasta{Nombre: "Ficha", Cantidad: dec("1"), PrecioUnitario: dec("0.50")},
	)

	_, err := entradaUC(arts, provs, regs).Ejecutar(context.Background(), movimientos.EntradaInput{
		Proveedor:      "Electro SRL",
		NumComprobante: "R-0006",
	}, c)
	require.Error(t, err)

	var remoto *movimientos.ErrEscrituraRemota
	require.ErrorAs(t, err, &remoto)
	assert.Equal(t, movimientos.PasoCrearDetalle, remoto.Paso)
	assert.Equal(t, "Ficha", remoto.Recurso)

	// cabecera + detalle 1 + update artículo 1 ya estaban aplicados
	assert.Len(t, remoto.Completados, 3)
	assert.Len(t, regs.Cabeceras, 1)
	assert.Len(t, regs.Detalles, 1)
	require.Len(t, arts.Updates, 1)

	assert.Equal(t, movimientos.CanastaFallida, c.Estado())
	assert.Len(t, c.Lineas(), 2, "las líneas quedan para reintentar")
}

// Validaciones locales: ninguna escritura sale.
func TestEntrada_ValidacionLocalNoEscribe(t *testing.T) {
	arts := newArticuloRepoMock()
	provs := newProveedorRepoMock()
	regs := &registroRepoMock{}
	uc := entradaUC(arts, provs, regs)

	c := canastaEntrada(t, movimientos.LineaCanasta{Nombre: "Algo", Cantidad: dec("1"), PrecioUnitario: dec("1")})

	_, err := uc.Ejecutar(context.Background(), movimientos.EntradaInput{Proveedor: "", NumComprobante: "R-1"}, c)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Ejecutar(context.Background(), movimientos.EntradaInput{Proveedor: "X", NumComprobante: ""}, c)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// proveedor nuevo sin dirección ni teléfono: validación, no escritura
	_, err = uc.Ejecutar(context.Background(), movimientos.EntradaInput{Proveedor: "Nuevo SA", NumComprobante: "R-1"}, c)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, provs.Creates)
	assert.Empty(t, regs.Cabeceras)
	assert.Empty(t, regs.Detalles)
}

// Canasta vacía: rechazo local.
func TestEntrada_CanastaVacia(t *testing.T) {
	c, err := movimientos.NewCanasta(entity.TipoEntrada)
	require.NoError(t, err)

	_, err = entradaUC(newArticuloRepoMock(), newProveedorRepoMock(), &registroRepoMock{}).
		Ejecutar(context.Background(), movimientos.EntradaInput{Proveedor: "X", NumComprobante: "1"}, c)
	assert.ErrorIs(t, err, domain.ErrEmptyBasket)
}
