package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
)

// EntryHandler maneja las peticiones HTTP para entradas de stock (protegido).
type EntryHandler struct {
	uc *stock.EntryUseCase
}

// NewEntryHandler construye el handler.
func NewEntryHandler(uc *stock.EntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "product_id, quantity, entry_date (YYYY-MM-DD), observation"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [get]
func (h *EntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entradas activas
// @Description  Admite filtro por producto, por almacén o por rango de fechas
//               (from y to en formato YYYY-MM-DD, ambos requeridos juntos).
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtro por producto"
// @Param        warehouse_id  query  string  false  "Filtro por almacén"
// @Param        from          query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to            query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.EntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	var (
		out []*dto.EntryResponse
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
// @Summary      Actualizar entrada
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateEntryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar entrada (borrado lógico, deja de contar en el saldo)
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada desactivada"})
}

// HardDelete godoc
// @Summary      Eliminar entrada permanentemente
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id}/permanent [delete]
func (h *EntryHandler) HardDelete(c *fiber.Ctx) error {
	if err := h.uc.HardDelete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada permanentemente"})
}

// parseDateRange valida el par from/to de los listados por rango.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, errRange
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errRange
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errRange
	}
	return from, to, nil
}

var errRange = errors.New("from y to son requeridos en formato YYYY-MM-DD")
