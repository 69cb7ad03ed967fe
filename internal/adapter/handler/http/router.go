package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mkalinin/shopadmin/internal/adapter/config"
	"github.com/mkalinin/shopadmin/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	dashboardHandler *DashboardHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			// every admin route, dashboard-stats included, sits behind
			// both checks
			admin.Use(authCheck(tokenService), adminCheck())

			admin.GET("/orders", orderHandler.ListOrders)
			admin.PUT("/orders/:id", orderHandler.UpdateOrder)

			admin.POST("/process-seller-payment/:orderId", paymentHandler.ProcessSellerPayment)
			admin.GET("/seller-payments", paymentHandler.ListSellerPayments)

			admin.GET("/dashboard-stats", dashboardHandler.DashboardStats)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
