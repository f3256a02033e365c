package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.LoadConfig()

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	issuer := services.NewRecordingInvoiceIssuer(db)
	reservationService := services.NewReservationService(db, issuer)
	expenseService := services.NewExpenseService(db)
	invoiceService := services.NewInvoiceService(db)
	roomService := services.NewRoomService(db)

	// Initialize controllers
	reservationController := controllers.NewReservationController(reservationService)
	expenseController := controllers.NewExpenseController(expenseService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	roomController := controllers.NewRoomController(roomService)

	router := routes.SetupRouter(
		reservationController,
		expenseController,
		invoiceController,
		roomController,
		cfg.CorsOriginList(),
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
