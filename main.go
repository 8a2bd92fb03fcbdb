package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "umrah/internal/config"
	intdb "umrah/internal/db"
	"umrah/internal/domain/models"
	router "umrah/internal/http"
	"umrah/internal/http/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if env.DBAutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := intdb.EnsureSchema(ctx, db); err != nil {
			cancel()
			log.Fatalf("Gagal menyiapkan skema: %v", err)
		}
		cancel()
	}

	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		log.Fatalf("Gagal membuat folder upload %s: %v", env.UploadDir, err)
	}

	r := router.NewRouter(env)

	if env.AdminEmail != "" && env.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := handlers.AuthService("bootstrap").EnsureAdmin(ctx, models.UserInput{
			Name:           "Administrator",
			PassportNumber: "ADMIN",
			Email:          env.AdminEmail,
			Password:       env.AdminPassword,
		})
		cancel()
		if err != nil {
			log.Printf("warning: gagal membuat admin awal: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
