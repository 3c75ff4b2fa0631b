package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosmos/internal/domain"
	"cosmos/internal/repository"
	"cosmos/internal/service"
)

type createProductReq struct {
	SKU         string          `json:"sku" binding:"required,sku"`
	Name        string          `json:"name" binding:"required,max=120,cosmic"`
	Description string          `json:"description" binding:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" binding:"required,iso4217"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Status      string          `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
}

func (r createProductReq) toInput() service.ProductCreateInput {
	return service.ProductCreateInput{
		SKU:         r.SKU,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		CategoryID:  r.CategoryID,
		Status:      domain.ProductStatus(r.Status),
	}
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} productResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.products.Create(c, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(p))
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} productResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.products.Get(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

// @Summary Replace product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body createProductReq true "Product"
// @Success 200 {object} productResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) replaceProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.products.Replace(c, id, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

type patchProductReq struct {
	SKU         *string          `json:"sku" binding:"omitempty,sku"`
	Name        *string          `json:"name" binding:"omitempty,max=120,cosmic"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Status      *string          `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE ARCHIVED"`
}

// @Summary Patch product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param input body patchProductReq true "Fields to change"
// @Success 200 {object} productResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products/{id} [patch]
func (s *Server) patchProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req patchProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := domain.ProductPatch{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		st := domain.ProductStatus(*req.Status)
		patch.Status = &st
	}
	p, err := s.products.Patch(c, id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.products.Delete(c, id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Search products
// @Tags products
// @Produce json
// @Param q query string false "Substring over name, sku, description"
// @Param categoryId query string false "Category ID"
// @Param status query string false "DRAFT | ACTIVE | ARCHIVED"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param page query int false "Page index, from 0"
// @Param size query int false "Page size"
// @Param sort query []string false "field or field,desc" collectionFormat(multi)
// @Success 200 {object} pageResponse
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	var filter repository.ProductSearch
	filter.Query = c.Query("q")
	if v := c.Query("categoryId"); v != "" {
		cid, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categoryId"})
			return
		}
		filter.CategoryID = &cid
	}
	if v := c.Query("status"); v != "" {
		switch st := domain.ProductStatus(v); st {
		case domain.ProductStatusDraft, domain.ProductStatusActive, domain.ProductStatusArchived:
			filter.Status = &st
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}
	if v := c.Query("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
			return
		}
		filter.MinPrice = &d
	}
	if v := c.Query("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
			return
		}
		filter.MaxPrice = &d
	}

	page := repository.PageRequest{Page: 0, Size: 20}
	if v := c.Query("page"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			page.Page = x
		}
	}
	if v := c.Query("size"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			page.Size = x
		}
	}

	result, err := s.products.Search(c, filter, page, c.QueryArray("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPageResponse(result))
}
