package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastano/almacen-admin/internal/application/auth"
	"github.com/jcastano/almacen-admin/internal/application/catalogo"
	"github.com/jcastano/almacen-admin/internal/application/movimientos"
	"github.com/jcastano/almacen-admin/internal/application/reportes"
	infrapdf "github.com/jcastano/almacen-admin/internal/infrastructure/pdf"
	"github.com/jcastano/almacen-admin/internal/infrastructure/remoto"
	httpRouter "github.com/jcastano/almacen-admin/internal/interfaces/http"
	"github.com/jcastano/almacen-admin/pkg/config"
	"github.com/jcastano/almacen-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("remoto", cfg.Remoto.BaseURL).
		Msg("iniciando aplicación")

	// Toda la persistencia vive detrás del API remoto.
	cliente := remoto.NewClient(cfg.Remoto, log)
	articuloRepo := remoto.NewArticuloRepository(cliente)
	proveedorRepo := remoto.NewProveedorRepository(cliente)
	registroRepo := remoto.NewRegistroRepository(cliente)
	categoriaRepo := remoto.NewCategoriaRepository(cliente)
	clienteRepo := remoto.NewClienteRepository(cliente)
	listaRepo := remoto.NewListaPrecioRepository(cliente)
	tipoRepo := remoto.NewTipoRepository(cliente)

	articuloUC := catalogo.NewArticuloUseCase(articuloRepo)
	catalogoUC := catalogo.NewCatalogoUseCase(categoriaRepo, proveedorRepo, listaRepo, tipoRepo)
	clienteUC := catalogo.NewClienteUseCase(clienteRepo)
	entradaUC := movimientos.NewRegistrarEntradaUseCase(articuloRepo, proveedorRepo, registroRepo, log)
	salidaUC := movimientos.NewRegistrarSalidaUseCase(articuloRepo, registroRepo, log)
	listarUC := movimientos.NewListarUseCase(registroRepo)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator(cfg.App.Name)
	reporteUC := reportes.NewReporteUseCase(articuloRepo, registroRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(cfg.Admin, cfg.JWT, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF tardan más que el resto
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ArticuloUC:  articuloUC,
		CatalogoUC:  catalogoUC,
		ClienteUC:   clienteUC,
		EntradaUC:   entradaUC,
		SalidaUC:    salidaUC,
		ListarUC:    listarUC,
		ReporteUC:   reporteUC,
		ArticuloRep: articuloRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
