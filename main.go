// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/api/database"
	"portfolio/api/handlers"
	"portfolio/api/middleware"
	"portfolio/api/seed"
	"portfolio/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize PostgreSQL Database (portfolio document + contact messages) ---
	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse Database (page views + interactions) ---
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootCancel()

	if err := dbClient.EnsureSchema(bootCtx); err != nil {
		log.Fatalf("Failed to ensure PostgreSQL schema: %v", err)
	}
	if err := chClient.EnsureSchema(bootCtx); err != nil {
		log.Fatalf("Failed to ensure ClickHouse schema: %v", err)
	}

	// --- Initialize Stores ---
	portfolioStore := store.NewPortfolioStore(dbClient.DB)
	analyticsStore := store.NewAnalyticsStore(chClient)

	// Seed the demo portfolio; no-ops when a document already exists.
	if err := seed.EnsurePortfolio(bootCtx, portfolioStore); err != nil {
		log.Fatalf("Failed to seed portfolio data: %v", err)
	}

	// --- Initialize Handlers ---
	portfolioHandlers := handlers.NewPortfolioHandlers(portfolioStore)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore, portfolioStore)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Albee John Portfolio API - Data Science Professional"})
		})

		api.GET("/portfolio", portfolioHandlers.GetPortfolio)
		api.PUT("/portfolio", portfolioHandlers.UpdatePortfolio)

		api.POST("/contact", portfolioHandlers.CreateContactMessage)
		api.GET("/contact/messages", portfolioHandlers.GetContactMessages)
		api.PUT("/contact/messages/:id/read", portfolioHandlers.MarkMessageRead)

		analyticsGroup := api.Group("/analytics")
		{
			analyticsGroup.POST("/pageview", analyticsHandlers.TrackPageView)
			analyticsGroup.POST("/interaction", analyticsHandlers.TrackInteraction)
			analyticsGroup.GET("/summary", analyticsHandlers.GetSummary)
			analyticsGroup.GET("/page-views", analyticsHandlers.GetPageViews)
			analyticsGroup.GET("/interactions", analyticsHandlers.GetInteractions)
			analyticsGroup.GET("/dashboard", analyticsHandlers.GetDashboard)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Portfolio API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Portfolio API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
