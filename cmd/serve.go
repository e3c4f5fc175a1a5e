package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"

	config "github.com/jessicacardoso1/taskmanager-web/internal/configs"
	httpapi "github.com/jessicacardoso1/taskmanager-web/internal/http"
	repository "github.com/jessicacardoso1/taskmanager-web/internal/repositories"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local task store",
	Long:  "Starts a local HTTP server implementing the /Tarefas protocol, for development and end-to-end runs of the client",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabase(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		var redisClient rueidis.Client
		if cfg.RedisAddr != "" {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
		}

		e := echo.New()
		handler := httpapi.NewHandler(taskRepo)
		httpapi.Register(e, handler, cfg.RateLimit, redisClient)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
