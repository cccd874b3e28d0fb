package service

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nernstsolution/nernst-web/internal/cart"
	"github.com/nernstsolution/nernst-web/internal/catalog"
	"github.com/nernstsolution/nernst-web/internal/email"
	"github.com/nernstsolution/nernst-web/internal/handlers"
	"github.com/nernstsolution/nernst-web/internal/stripe"
)

type Service struct {
	config         *Config
	cartStore      *cart.Store
	emailService   *email.Service
	paymentHandler *handlers.PaymentHandler
	leadHandler    *handlers.LeadHandler
	cartHandler    *handlers.CartHandler
}

func New(config *Config) *Service {
	emailService := email.NewService(config.Email.APIKey, config.Email.From)
	stripeService := stripe.NewService(config.Stripe.SecretKey)
	cartStore := cart.NewStore()

	return &Service{
		config:       config,
		cartStore:    cartStore,
		emailService: emailService,
		paymentHandler: handlers.NewPaymentHandler(
			stripeService,
			emailService,
			config.Stripe.WebhookSecret,
			config.BaseURL,
			config.Email.ContactEmail,
		),
		leadHandler: handlers.NewLeadHandler(emailService, config.Email.ContactEmail),
		cartHandler: handlers.NewCartHandler(cartStore),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")

	// Product catalog
	api.GET("/products", s.handleListProducts)
	api.GET("/products/:id", s.handleGetProduct)

	// Session cart
	api.GET("/cart", s.cartHandler.HandleGetCart)
	api.POST("/cart/add", s.cartHandler.HandleAddToCart)
	api.PUT("/cart/item/:id", s.cartHandler.HandleUpdateCartItem)
	api.DELETE("/cart/item/:id", s.cartHandler.HandleRemoveFromCart)
	api.POST("/cart/clear", s.cartHandler.HandleClearCart)

	// Stripe checkout
	api.POST("/create-checkout-session", s.paymentHandler.CreateCheckoutSession)
	api.POST("/stripe-webhook", s.paymentHandler.HandleWebhook)

	// Lead generation
	api.POST("/send-contact-message", s.leadHandler.HandleContactMessage)
	api.POST("/send-quote-request", s.leadHandler.HandleQuoteRequest)
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
	})
}

func (s *Service) handleListProducts(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, catalog.ByCategory(catalog.Category(category)))
	}
	return c.JSON(http.StatusOK, catalog.All())
}

func (s *Service) handleGetProduct(c echo.Context) error {
	product, ok := catalog.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}
