package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/catalogo"
	"github.com/jcastano/almacen-admin/internal/application/dto"
)

// CatalogoHandler maneja categorías, proveedores, listas de precios y tipos.
type CatalogoHandler struct {
	uc       *catalogo.CatalogoUseCase
	clientes *catalogo.ClienteUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.CatalogoUseCase, clientes *catalogo.ClienteUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc, clientes: clientes}
}

func (h *CatalogoHandler) ListCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListCategorias(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCategoria(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogoHandler) ListProveedores(c *fiber.Ctx) error {
	out, err := h.uc.ListProveedores(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) CreateProveedor(c *fiber.Ctx) error {
	var in dto.CreateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearProveedor(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogoHandler) ListClientes(c *fiber.Ctx) error {
	out, err := h.clientes.List(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) CreateCliente(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientes.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogoHandler) UpdateCliente(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientes.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) ListListasPrecios(c *fiber.Ctx) error {
	out, err := h.uc.ListListasPrecios(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) CreateListaPrecio(c *fiber.Ctx) error {
	var in dto.CreateListaPrecioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearListaPrecio(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogoHandler) ListTiposResponsable(c *fiber.Ctx) error {
	out, err := h.uc.ListTiposResponsable(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogoHandler) ListTiposComprobante(c *fiber.Ctx) error {
	out, err := h.uc.ListTiposComprobante(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
