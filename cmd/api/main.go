package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kinafsalud/turnos-api/internal/config"
	dbpkg "github.com/kinafsalud/turnos-api/internal/db"
	"github.com/kinafsalud/turnos-api/internal/middleware"
	"github.com/kinafsalud/turnos-api/internal/routes"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	slog.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
