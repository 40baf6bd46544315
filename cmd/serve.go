package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"

	"github.com/jjenkins/waiver/internal/config"
	"github.com/jjenkins/waiver/internal/handlers"
	"github.com/jjenkins/waiver/internal/mail"
	"github.com/jjenkins/waiver/internal/store"
)

var port int
var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the release form web server",
	Long: `Start the web server that serves the summer camp liability release form
and accepts signed submissions.

Each submission is rendered to a PDF, hashed for tamper evidence, stored in
PostgreSQL with its audit metadata, and emailed to the configured staff list.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the server on (overrides PORT)")
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to an optional YAML config file")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, errs := config.Load(configFile)
	if len(errs) > 0 {
		for _, err := range errs {
			slog.Error("invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	var handler slog.Handler
	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	waiverStore := store.NewWaiverStore(db)
	mailer := mail.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.Recipients())

	app := fiber.New(fiber.Config{
		AppName: "Summer Camp Release",
	})

	app.Use(logger.New())

	// Routes
	app.Get("/", handlers.FormHandler())
	app.All("/api/submit", handlers.SubmitHandler(waiverStore, mailer))

	if port == 0 {
		port = cfg.Port
	}
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting server", "addr", addr, "env", cfg.Env)
	if err := app.Listen(addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
