package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createCartReq struct {
	Currency string `json:"currency" binding:"required,iso4217"`
}

// @Summary Create cart
// @Tags carts
// @Accept json
// @Produce json
// @Param input body createCartReq true "Cart"
// @Success 201 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Router /carts [post]
func (s *Server) createCart(c *gin.Context) {
	var req createCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := s.carts.Create(c, req.Currency)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(cart))
}

// @Summary Get cart by id
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id} [get]
func (s *Server) getCart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cart, err := s.carts.Get(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

type addCartItemReq struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// @Summary Add item to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := s.carts.AddItem(c, id, req.ProductID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// @Summary Remove item from cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/items/{productId} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
		return
	}
	cart, err := s.carts.RemoveItem(c, id, productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// @Summary Clear cart
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/clear [post]
func (s *Server) clearCart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cart, err := s.carts.Clear(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// @Summary Checkout cart into a draft order
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 201 {object} orderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{id}/checkout [post]
func (s *Server) checkoutCart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	order, err := s.carts.Checkout(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}
