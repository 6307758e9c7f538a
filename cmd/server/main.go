package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"schemaforge/internal/config"
	"schemaforge/internal/faq"
	"schemaforge/internal/jsonld"
	"schemaforge/internal/preset"
	"schemaforge/internal/preview"
	"schemaforge/pkg/database"
	"schemaforge/pkg/storage"
	"schemaforge/pkg/utils"
)

func main() {
	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "db": "ok"})
	})

	// Schema generation
	builder := jsonld.NewBuilder()
	schemaHandler := jsonld.NewHandler(builder)
	schemaHandler.RegisterRoutes(router.Group("/schema"))

	// FAQ
	faqHandler := faq.NewHandler()
	faqHandler.RegisterRoutes(router.Group("/faq"))

	// Live preview
	router.GET("/ws", preview.WSHandler(builder))

	// Configurations and presets
	kv := storage.NewSQLiteKV(db)

	configStore := config.NewStore(kv)
	configHandler := config.NewHandler(configStore)
	configHandler.RegisterRoutes(router.Group("/configs"))

	presetStore := preset.NewStore(kv)
	presetHandler := preset.NewHandler(presetStore)
	presetHandler.RegisterRoutes(router.Group("/presets"))

	srvCfg := utils.LoadServerConfig()
	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("schemaforge listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
