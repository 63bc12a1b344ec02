package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/order"
)

// IncomingOrderHandler maneja los pedidos entrantes (admin y supplier).
type IncomingOrderHandler struct {
	uc *order.IncomingOrderUseCase
}

// NewIncomingOrderHandler construye el handler.
func NewIncomingOrderHandler(uc *order.IncomingOrderUseCase) *IncomingOrderHandler {
	return &IncomingOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido entrante (suma stock)
// @Tags         incoming-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncomingOrderRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.IncomingOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incoming-orders [post]
func (h *IncomingOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncomingOrderRequest
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
// @Summary      Listar pedidos entrantes (admin todos; supplier los suyos)
// @Tags         incoming-orders
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"            default(1)
// @Param        per_page  query  int  false  "Tamaño de página"  default(10)
// @Success      200       {object}  dto.IncomingOrderListResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Router       /api/incoming-orders [get]
func (h *IncomingOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), actorFrom(c), pageFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener pedido entrante por ID
// @Tags         incoming-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.IncomingOrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incoming-orders/{id} [get]
func (h *IncomingOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), actorFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido entrante (reconcilia el stock por delta)
// @Tags         incoming-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del pedido"
// @Param        body  body  dto.UpdateIncomingOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IncomingOrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/incoming-orders/{id} [put]
func (h *IncomingOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIncomingOrderRequest
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
// @Summary      Eliminar pedido entrante (revierte su aporte al stock)
// @Tags         incoming-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/incoming-orders/{id} [delete]
func (h *IncomingOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
