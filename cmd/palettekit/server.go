// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/thatcatcamp/palettekit/internal/config"
	"github.com/thatcatcamp/palettekit/internal/db"
	"github.com/thatcatcamp/palettekit/internal/handlers"
	"github.com/thatcatcamp/palettekit/internal/logging"
	"github.com/thatcatcamp/palettekit/internal/middleware"
	"github.com/thatcatcamp/palettekit/internal/palettes"
	"github.com/thatcatcamp/palettekit/internal/render"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Run the palettekit HTTP API",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initLibraryDB(); err != nil {
			fail(err)
		}

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.RequestLogger())
		r.Use(middleware.SecurityHeadersMiddleware())

		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.capacity"), config.GetDuration("ratelimit.interval"))
		defer limiter.Close()
		r.Use(middleware.RateLimitMiddleware(limiter, "/api/"))

		api := buildAPI()
		api.Register(r)

		addr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			logging.Logger.Info("starting HTTP server", "addr", addr, "cache", api.Cache != nil)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		}()

		<-ctx.Done()
		logging.Logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fail(fmt.Errorf("failed to shut down: %w", err))
		}
	},
}

// buildAPI wires the handlers to the database, cache and config defaults
func buildAPI() *handlers.API {
	var cache *palettes.Cache
	if config.GetBool("server.cache_enabled") {
		cache = palettes.NewCache(config.GetInt("server.cache_size"))
	}

	api := handlers.NewAPI(db.GetDB(), cache)
	api.SwatchSize = render.SwatchSize{
		Width:  config.GetInt("render.swatch_width"),
		Height: config.GetInt("render.swatch_height"),
	}

	if mode, err := palettes.ParseMode(config.GetString("palette.mode")); err == nil {
		api.Defaults.Mode = mode
	} else {
		logging.Logger.Warn("ignoring palette.mode", "err", err)
	}
	if steps := config.GetInt("palette.steps"); steps > 0 {
		api.Defaults.Steps = steps
	}
	if name := config.GetString("palette.name"); name != "" {
		api.Defaults.Name = name
	}
	api.Defaults.PreserveAccessibility = config.GetBool("palette.preserve_accessibility")
	api.Defaults.GenerateSemanticColors = config.GetBool("palette.semantic_colors")

	return api
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
