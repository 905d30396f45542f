package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/catalogo"
	"github.com/jcastano/almacen-admin/internal/application/dto"
)

// ArticuloHandler maneja el CRUD del catálogo de artículos (protegido).
type ArticuloHandler struct {
	uc *catalogo.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *catalogo.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List godoc
// @Summary      Listar artículos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por nombre (sin mayúsculas ni tildes)"
// @Param        activos query  bool    false  "Solo artículos activos"
// @Success      200  {array}   dto.ArticuloResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
	soloActivos := c.QueryBool("activos", false)
	out, err := h.uc.List(c.Context(), c.Query("q"), soloActivos)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un artículo por ID.
func (h *ArticuloHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo (stock y costo nacen en cero)
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticuloRequest  true  "datos comerciales"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza los datos comerciales. Stock y costo solo cambian por movimientos.
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete baja del artículo en el API remoto.
func (h *ArticuloHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "artículo eliminado"})
}
