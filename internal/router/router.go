package router

import (
	"warehouse/internal/config"
	"warehouse/internal/dto"
	"warehouse/internal/handler"
	"warehouse/internal/metrics"
	"warehouse/internal/middleware"
	"warehouse/internal/repository"
	"warehouse/internal/service"
	"warehouse/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

// Services is everything the HTTP layer needs from the layers below it.
type Services struct {
	Auth   service.AuthService
	Tokens *token.Manager

	Suppliers         service.SupplierService
	Categories        service.CategoryService
	Products          service.ProductService
	ProductQuantities service.ProductQuantityService
	Orders            service.OrderService
	OrderItems        service.OrderItemService
	Warehouses        service.WarehouseService
	WarehouseItems    service.WarehouseItemService
}

// NewServices wires repositories and services over db and rdb.
// Dependency graph: Service ← Repository ← DB/Redis
func NewServices(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Services {
	tx := repository.NewTransactor(db)

	// ── Repositories ─────────────────────────────────────────────────────────
	supplierRepo := repository.NewSupplierRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	quantityRepo := repository.NewProductQuantityRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	warehouseItemRepo := repository.NewWarehouseItemRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenLifetime, cfg.RefreshTokenLifetime)
	return &Services{
		Auth:              service.NewAuthService(userRepo, refreshRepo, tokens),
		Tokens:            tokens,
		Suppliers:         service.NewSupplierService(supplierRepo, tx),
		Categories:        service.NewCategoryService(categoryRepo, tx),
		Products:          service.NewProductService(productRepo, categoryRepo, supplierRepo, tx),
		ProductQuantities: service.NewProductQuantityService(quantityRepo, productRepo, tx),
		Orders:            service.NewOrderService(orderRepo, tx),
		OrderItems:        service.NewOrderItemService(orderItemRepo, orderRepo, quantityRepo, tx),
		Warehouses:        service.NewWarehouseService(warehouseRepo, tx),
		WarehouseItems:    service.NewWarehouseItemService(warehouseItemRepo, warehouseRepo, quantityRepo, tx),
	}
}

// New wires all dependencies and returns a configured Gin engine.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	return NewWithServices(cfg, NewServices(cfg, db, rdb), db, rdb)
}

// NewWithServices builds the engine around prebuilt services. db and rdb are
// only used by /health and may be nil.
func NewWithServices(cfg *config.Config, svcs *Services, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	m := metrics.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(svcs.Auth, m)
	scopedH := handler.NewScopedHandler(svcs.WarehouseItems, svcs.OrderItems)
	resources := map[string]interface{ Register(*gin.RouterGroup) }{
		"suppliers":          handler.NewResourceHandler(svcs.Suppliers),
		"categories":         handler.NewResourceHandler(svcs.Categories),
		"products":           handler.NewResourceHandler(svcs.Products),
		"product-quantities": handler.NewResourceHandler(svcs.ProductQuantities),
		"orders":             handler.NewResourceHandler(svcs.Orders),
		"order-items":        handler.NewResourceHandler[dto.OrderItemRequest, dto.OrderItemResponse](svcs.OrderItems),
		"warehouses":         handler.NewResourceHandler(svcs.Warehouses),
		"warehouse-items":    handler.NewResourceHandler[dto.WarehouseItemRequest, dto.WarehouseItemResponse](svcs.WarehouseItems),
	}

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/", authH.Obtain)
		tokenGroup.POST("/refresh/", authH.Refresh)
		tokenGroup.POST("/verify/", authH.Verify)
	}

	// Protected routes
	v1 := r.Group(apiPrefix, middleware.JWTAuth(svcs.Tokens))
	{
		names := make([]string, 0, len(resources))
		for name, h := range resources {
			h.Register(v1.Group("/" + name))
			names = append(names, name)
		}
		v1.GET("/", handler.APIRoot(apiPrefix, names))

		v1.GET("/items/:warehouse_id/", scopedH.WarehouseItems)
		v1.GET("/order/:order_id/", scopedH.OrderItems)
	}

	return r
}
