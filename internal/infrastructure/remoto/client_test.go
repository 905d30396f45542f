package remoto

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/almacen-admin/internal/domain"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/pkg/config"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

func clienteDePrueba(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.RemotoConfig{
		BaseURL:        srv.URL,
		Token:          "token-prueba",
		TimeoutSeconds: 5,
	}, logger.Nop())
}

func TestClient_EnviaRecursoYCabeceras(t *testing.T) {
	var capturado *http.Request
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		capturado = r.Clone(context.Background())
		json.NewEncoder(w).Encode([]articuloWire{})
	})

	repo := NewArticuloRepository(c)
	_, err := repo.List(context.Background())
	require.NoError(t, err)

	require.NotNil(t, capturado)
	assert.Equal(t, "articulos", capturado.URL.Query().Get("recurso"))
	assert.Empty(t, capturado.URL.Query().Get("id"))
	assert.Equal(t, "token-prueba", capturado.Header.Get("X-Auth-Token"))
	assert.NotEmpty(t, capturado.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", capturado.Header.Get("Accept"))
}

func TestClient_GetConID(t *testing.T) {
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "articulos", r.URL.Query().Get("recurso"))
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode(articuloWire{ID: 42, Nombre: "Tornillo", Activo: true})
	})

	a, err := NewArticuloRepository(c).GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), a.ID)
	assert.Equal(t, "Tornillo", a.Nombre)
}

func TestClient_404EsErrNotFound(t *testing.T) {
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no existe", http.StatusNotFound)
	})

	_, err := NewArticuloRepository(c).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ErrorRemotoIncluyeStatusYCuerpo(t *testing.T) {
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tabla bloqueada", http.StatusInternalServerError)
	})

	_, err := NewArticuloRepository(c).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "tabla bloqueada")
}

// El update debe viajar con el registro completo: el API no hace merge parcial.
func TestClient_UpdateEnviaRegistroCompleto(t *testing.T) {
	var recibido articuloWire
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		json.NewEncoder(w).Encode(recibido)
	})

	original := &entity.Articulo{
		ID:          7,
		Nombre:      "Pintura latex",
		CategoriaID: 3,
		ProveedorID: 5,
		PrecioVenta: decimal.RequireFromString("120.00"),
		Costo:       decimal.RequireFromString("80.50"),
		StockActual: decimal.RequireFromString("14"),
		Descripcion: "Balde 20L blanco",
		Activo:      true,
		Version:     9,
	}
	actualizado, err := NewArticuloRepository(c).Update(context.Background(), original)
	require.NoError(t, err)

	assert.Equal(t, "Pintura latex", recibido.Nombre)
	assert.Equal(t, int64(3), recibido.CategoriaID)
	assert.Equal(t, "Balde 20L blanco", recibido.Descripcion)
	assert.True(t, recibido.Activo)
	assert.Equal(t, int64(9), recibido.Version)
	assert.True(t, recibido.Costo.Equal(original.Costo))
	assert.True(t, actualizado.StockActual.Equal(original.StockActual))
}

func TestClient_ListConDetallesAnida(t *testing.T) {
	c := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "registros", r.URL.Query().Get("recurso"))
		assert.Equal(t, "detalles", r.URL.Query().Get("incluir"))
		json.NewEncoder(w).Encode([]registroWire{
			{
				ID: 1, Tipo: "ENTRADA", ProveedorID: 5,
				Detalles: []detalleWire{
					{ID: 10, RegistroID: 1, ArticuloID: 7, Cantidad: decimal.RequireFromString("4")},
				},
			},
		})
	})

	regs, err := NewRegistroRepository(c).ListConDetalles(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, entity.TipoEntrada, regs[0].Registro.Tipo)
	require.Len(t, regs[0].Detalles, 1)
	assert.Equal(t, int64(7), regs[0].Detalles[0].ArticuloID)
}
