package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
)

// ExitHandler maneja las peticiones HTTP para salidas de stock (protegido).
type ExitHandler struct {
	uc *stock.ExitUseCase
}

// NewExitHandler construye el handler.
func NewExitHandler(uc *stock.ExitUseCase) *ExitHandler {
	return &ExitHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de stock
// @Description  Rechaza con 409 si la cantidad excede el saldo actual del
//               producto. La verificación definitiva ocurre dentro de la
//               transacción de escritura, así que dos salidas concurrentes no
//               pueden sobregirar el mismo producto.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExitRequest  true  "product_id, quantity, exit_date (YYYY-MM-DD), observation"
// @Success      201   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *ExitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.ExitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [get]
func (h *ExitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar salidas activas
// @Description  Admite filtro por producto, por almacén o por rango de fechas
//               (from y to en formato YYYY-MM-DD, ambos requeridos juntos).
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtro por producto"
// @Param        warehouse_id  query  string  false  "Filtro por almacén"
// @Param        from          query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to            query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.ExitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exits [get]
func (h *ExitHandler) List(c *fiber.Ctx) error {
	var (
		out []*dto.ExitResponse
		err error
	)
	switch {
	case c.Query("product_id") != "":
		out, err = h.uc.ListByProduct(c.Query("product_id"))
	case c.Query("warehouse_id") != "":
		out, err = h.uc.ListByWarehouse(c.Query("warehouse_id"))
	case c.Query("from") != "" || c.Query("to") != "":
		from, to, perr := parseDateRange(c.Query("from"), c.Query("to"))
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: perr.Error()})
		}
		out, err = h.uc.ListByDateRange(from, to)
	default:
		out, err = h.uc.ListAll()
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar salida
// @Description  Revalida el resultado completo, incluida la suficiencia de
//               stock con la cantidad anterior descontada.
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.UpdateExitRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ExitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [put]
func (h *ExitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar salida (borrado lógico, la cantidad vuelve al saldo)
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la salida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id} [delete]
func (h *ExitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida desactivada"})
}

// HardDelete godoc
// @Summary      Eliminar salida permanentemente
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la salida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exits/{id}/permanent [delete]
func (h *ExitHandler) HardDelete(c *fiber.Ctx) error {
	if err := h.uc.HardDelete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida eliminada permanentemente"})
}
