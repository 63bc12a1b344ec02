package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/order"
)

// OutgoingOrderHandler maneja los pedidos salientes (admin y customer).
type OutgoingOrderHandler struct {
	uc *order.OutgoingOrderUseCase
}

// NewOutgoingOrderHandler construye el handler.
func NewOutgoingOrderHandler(uc *order.OutgoingOrderUseCase) *OutgoingOrderHandler {
	return &OutgoingOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido saliente (resta stock, valida disponibilidad)
// @Tags         outgoing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutgoingOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.OutgoingOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outgoing-orders [post]
func (h *OutgoingOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutgoingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos salientes (admin todos; customer los suyos)
// @Tags         outgoing-orders
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"            default(1)
// @Param        per_page  query  int  false  "Tamaño de página"  default(10)
// @Success      200       {object}  dto.OutgoingOrderListResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Router       /api/outgoing-orders [get]
func (h *OutgoingOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), actorFrom(c), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener pedido saliente por ID
// @Tags         outgoing-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OutgoingOrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outgoing-orders/{id} [get]
func (h *OutgoingOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido saliente (solo admin; reconcilia por delta)
// @Tags         outgoing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del pedido"
// @Param        body  body  dto.UpdateOutgoingOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OutgoingOrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outgoing-orders/{id} [put]
func (h *OutgoingOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutgoingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido saliente (solo admin; devuelve lo reservado)
// @Tags         outgoing-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outgoing-orders/{id} [delete]
func (h *OutgoingOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
