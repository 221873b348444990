package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/core/ports"
)

type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// List returns the authenticated user's cart lines.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  map[string]string
// @Router       /carrito [get]
func (h *CartHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Add puts a product into the authenticated user's cart.
//
// @Summary      Add cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /carrito [post]
func (h *CartHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.Add(c.Request().Context(), actor, ports.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Remove deletes one line from the authenticated user's cart.
//
// @Summary      Remove cart item
// @Tags         cart
// @Security     BearerAuth
// @Param        id  path  int  true  "Cart item id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /carrito/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.Remove(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
