package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/auth"
	"github.com/jcastano/almacen-admin/internal/application/catalogo"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/application/reportes"
	"github.com/jcastano/almacen-admin/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ArticuloUC  *catalogo.ArticuloUseCase
	CatalogoUC  *catalogo.CatalogoUseCase
	ClienteUC   *catalogo.ClienteUseCase
	EntradaUC   *movimientos.RegistrarEntradaUseCase
	SalidaUC    *movimientos.RegistrarSalidaUseCase
	ListarUC    *movimientos.ListarUseCase
	ReporteUC   *reportes.ReporteUseCase
	ArticuloRep repository.ArticuloRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Artículos
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/", articuloHandler.List)
	articulos.Post("/", articuloHandler.Create)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Put("/:id", articuloHandler.Update)
	articulos.Delete("/:id", RequireRole("admin"), articuloHandler.Delete)

	// Catálogos auxiliares
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.ClienteUC)
	categorias := protected.Group("/categorias")
	categorias.Get("/", catalogoHandler.ListCategorias)
	categorias.Post("/", catalogoHandler.CreateCategoria)

	proveedores := protected.Group("/proveedores")
	proveedores.Get("/", catalogoHandler.ListProveedores)
	proveedores.Post("/", catalogoHandler.CreateProveedor)

	clientes := protected.Group("/clientes")
	clientes.Get("/", catalogoHandler.ListClientes)
	clientes.Post("/", catalogoHandler.CreateCliente)
	clientes.Put("/:id", catalogoHandler.UpdateCliente)

	listas := protected.Group("/listas-precios")
	listas.Get("/", catalogoHandler.ListListasPrecios)
	listas.Post("/", catalogoHandler.CreateListaPrecio)

	tipos := protected.Group("/tipos")
	tipos.Get("/responsables", catalogoHandler.ListTiposResponsable)
	tipos.Get("/comprobantes", catalogoHandler.ListTiposComprobante)

	// Movimientos
	movGroup := protected.Group("/movimientos")
	movHandler := NewMovimientoHandler(deps.EntradaUC, deps.SalidaUC, deps.ListarUC, deps.ArticuloRep)
	movGroup.Get("/", movHandler.List)
	movGroup.Post("/entradas", movHandler.RegistrarEntrada)
	movGroup.Post("/salidas", movHandler.RegistrarSalida)

	// Reportes descargables
	repGroup := protected.Group("/reportes")
	repHandler := NewReporteHandler(deps.ReporteUC)
	repGroup.Get("/inventario.pdf", repHandler.InventarioPDF)
	repGroup.Get("/movimientos.pdf", repHandler.MovimientosPDF)
	repGroup.Get("/articulos.csv", repHandler.ArticulosCSV)
}
