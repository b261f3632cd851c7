package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"zarcaro/config"
	"zarcaro/internal/firebase"
	"zarcaro/internal/router"
	"zarcaro/internal/service"
	"zarcaro/pkg/plaidlink"
	"zarcaro/pkg/stripepay"
)

func main() {
	// .env is optional; deployed environments inject vars directly.
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	fs, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fs.Close()
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}

	stripeClient := stripepay.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	plaidClient, err := plaidlink.NewClient(cfg.Plaid.ClientID, cfg.Plaid.Secret, cfg.Plaid.Environment)
	if err != nil {
		log.Fatalf("plaid: %v", err)
	}
	mailSvc := service.NewMailService(&cfg.SMTP)

	engine := router.Setup(cfg, fs, firebase.NewVerifier(authClient), stripeClient, plaidClient, mailSvc)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
