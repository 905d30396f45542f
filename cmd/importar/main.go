// importar carga artículos masivamente en el API remoto desde un CSV exportado
// del sistema viejo (separador ; , encoding Windows-1252).
//
// Uso: go run ./cmd/importar [ruta/articulos.csv]
// Por defecto busca articulos.csv en el directorio actual.
//
// Columnas esperadas: nombre;categoria_id;proveedor_id;precio_venta;descripcion
// Stock y costo nacen en cero: solo los movimientos los cambian.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/domain/entity"
	"github.com/jcastano/almacen-admin/internal/infrastructure/remoto"
	"github.com/jcastano/almacen-admin/pkg/config"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

func main() {
	csvPath := "articulos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export viejo viene en Windows-1252; el API remoto espera UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 5

	filas, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(filas) > 0 && strings.EqualFold(filas[0][0], "nombre") {
		filas = filas[1:] // cabecera opcional
	}

	ctx := context.Background()
	repo := remoto.NewArticuloRepository(remoto.NewClient(cfg.Remoto, log))

	// Índice de nombres ya existentes para no duplicar
	existentes, err := repo.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar artículos existentes: %v\n", err)
		os.Exit(1)
	}
	vistos := make(map[string]bool, len(existentes))
	for _, a := range existentes {
		vistos[movimientos.NormalizarNombre(a.Nombre)] = true
	}

	creados, saltados := 0, 0
	for i, fila := range filas {
		nombre := strings.TrimSpace(fila[0])
		if nombre == "" {
			log.Warn().Int("fila", i+1).Msg("fila sin nombre, se salta")
			saltados++
			continue
		}
		clave := movimientos.NormalizarNombre(nombre)
		if vistos[clave] {
			log.Info().Str("articulo", nombre).Msg("ya existe, se salta")
			saltados++
			continue
		}

		categoriaID, _ := strconv.ParseInt(strings.TrimSpace(fila[1]), 10, 64)
		proveedorID, _ := strconv.ParseInt(strings.TrimSpace(fila[2]), 10, 64)
		precio, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(fila[3], ",", ".")))
		if err != nil {
			log.Warn().Int("fila", i+1).Str("precio", fila[3]).Msg("precio inválido, se salta")
			saltados++
			continue
		}

		creado, err := repo.Create(ctx, &entity.Articulo{
			Nombre:      nombre,
			CategoriaID: categoriaID,
			ProveedorID: proveedorID,
			PrecioVenta: precio,
			Costo:       decimal.Zero,
			StockActual: decimal.Zero,
			Descripcion: strings.TrimSpace(fila[4]),
			Activo:      true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear %q (fila %d): %v\n", nombre, i+1, err)
			os.Exit(1)
		}
		vistos[clave] = true
		creados++
		log.Info().Int64("id", creado.ID).Str("articulo", nombre).Msg("artículo creado")
	}

	fmt.Printf("Importación terminada: %d creados, %d saltados\n", creados, saltados)
}
