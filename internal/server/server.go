package server

import (
	"context"
	"net/http"
	"time"

	"github.com/benyxxxxx/globalconnector-service/internal/api"
	"github.com/benyxxxxx/globalconnector-service/internal/auth"
	"github.com/benyxxxxx/globalconnector-service/internal/booking"
	"github.com/benyxxxxx/globalconnector-service/internal/business"
	"github.com/benyxxxxx/globalconnector-service/internal/catalog"
	"github.com/benyxxxxx/globalconnector-service/internal/config"
	"github.com/benyxxxxx/globalconnector-service/internal/logger"
	"github.com/benyxxxxx/globalconnector-service/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, verifier payment.SettlementVerifier) *Server {
	if err := api.RegisterValidations(); err != nil {
		logger.Fatalf("failed to register validations: %v", err)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		corsMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(50, 100),
	)

	businessRepo := business.NewRepository(db)
	businessHandler := business.NewHandler(business.NewService(businessRepo))

	catalogRepo := catalog.NewRepository(db)
	catalogHandler := catalog.NewHandler(catalog.NewManager(catalogRepo))

	bookingRepo := booking.NewRepository(db)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, catalogRepo))

	paymentRepo := payment.NewRepository(db)
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, verifier, payment.Config{
		DestinationAddress: cfg.SolanaDestinationAddress,
		MintAddress:        cfg.MandelCoinMintAddress,
	}))

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/businesses", businessHandler.CreateBusiness)
		protected.GET("/businesses", businessHandler.ListBusinesses)
		protected.GET("/businesses/:businessID", businessHandler.GetBusiness)
		protected.PUT("/businesses/:businessID", businessHandler.UpdateBusiness)
		protected.DELETE("/businesses/:businessID", businessHandler.DeleteBusiness)

		protected.POST("/services", catalogHandler.CreateService)
		protected.GET("/services", catalogHandler.ListServices)
		protected.GET("/services/:serviceID", catalogHandler.GetService)
		protected.PUT("/services/:serviceID", catalogHandler.UpdateService)
		protected.DELETE("/services/:serviceID", catalogHandler.DeleteService)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.GET("/bookings/:bookingID", bookingHandler.GetBooking)
		protected.PUT("/bookings/:bookingID", bookingHandler.UpdateBooking)
		protected.DELETE("/bookings/:bookingID", bookingHandler.DeleteBooking)
		protected.GET("/bookings/:bookingID/payments", paymentHandler.ListBookingPayments)

		protected.POST("/payments", paymentHandler.CreatePayment)
		protected.GET("/payments/:paymentID", paymentHandler.GetPayment)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
