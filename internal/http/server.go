package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"cosmos/internal/domain"
	"cosmos/internal/repository"
	"cosmos/internal/service"
)

type Server struct {
	engine     *gin.Engine
	products   *service.ProductService
	categories *service.CategoryService
	carts      *service.CartService
	orders     *service.OrderService
	log        *zap.Logger
}

func NewServer(
	log *zap.Logger,
	products *service.ProductService,
	categories *service.CategoryService,
	carts *service.CartService,
	orders *service.OrderService,
) *Server {
	registerValidators()
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	s := &Server{
		engine:     r,
		products:   products,
		categories: categories,
		carts:      carts,
		orders:     orders,
		log:        log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.POST("", s.createProduct)
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.PUT(":id", s.replaceProduct)
		products.PATCH(":id", s.patchProduct)
		products.DELETE(":id", s.deleteProduct)

		categories := v1.Group("/categories")
		categories.POST("", s.createCategory)
		categories.GET(":id", s.getCategory)
		categories.PUT(":id", s.renameCategory)
		categories.DELETE(":id", s.deleteCategory)

		carts := v1.Group("/carts")
		carts.POST("", s.createCart)
		carts.GET(":id", s.getCart)
		carts.POST(":id/items", s.addCartItem)
		carts.DELETE(":id/items/:productId", s.removeCartItem)
		carts.POST(":id/clear", s.clearCart)
		carts.POST(":id/checkout", s.checkoutCart)

		orders := v1.Group("/orders")
		orders.GET(":id", s.getOrder)
		orders.POST(":id/pay", s.payOrder)
		orders.POST(":id/cancel", s.cancelOrder)
		orders.POST(":id/lines", s.addOrderLine)
		orders.DELETE(":id/lines/:productId", s.removeOrderLine)
	}
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSkuConflict):
		return http.StatusConflict
	case domain.IsStateError(err):
		return http.StatusConflict
	case domain.IsInvariantError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
}
