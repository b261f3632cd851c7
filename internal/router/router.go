package router

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"zarcaro/config"
	"zarcaro/internal/handler"
	"zarcaro/internal/middleware"
	"zarcaro/internal/repository"
	"zarcaro/pkg/plaidlink"
	"zarcaro/pkg/stripepay"
)

// Setup wires repositories and handlers onto a gin engine. All external
// handles are injected so tests can substitute fakes.
func Setup(
	cfg *config.Config,
	fs *firestore.Client,
	verifier middleware.TokenVerifier,
	payments stripepay.Provider,
	links plaidlink.Provider,
	notifier handler.ContactNotifier,
) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, time.Minute)))

	userRepo := repository.NewUserRepository(fs)
	txRepo := repository.NewTransactionRepository(fs)
	contactRepo := repository.NewContactRepository(fs)

	checkoutHandler := handler.NewCheckoutHandler(userRepo, payments)
	webhookHandler := handler.NewStripeWebhookHandler(payments, txRepo)
	plaidHandler := handler.NewPlaidHandler(links, userRepo)
	contactHandler := handler.NewContactHandler(contactRepo, notifier)
	txHandler := handler.NewTransactionHandler(txRepo)

	authMw := middleware.AuthRequired(verifier)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/create-checkout-session", authMw, checkoutHandler.Create)
	r.POST("/stripe/webhook", webhookHandler.Handle)
	plaid := r.Group("/plaid", authMw)
	{
		plaid.POST("/create_link_token", plaidHandler.CreateLinkToken)
		plaid.POST("/exchange_public_token", plaidHandler.ExchangePublicToken)
	}
	r.POST("/contact", contactHandler.Submit)
	r.GET("/transactions", authMw, txHandler.List)

	return r
}
