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
	"github.com/spf13/cobra"

	"task-board-system.com/task-board-system/internal/board"
	config "task-board-system.com/task-board-system/internal/configs"
	httpapi "task-board-system.com/task-board-system/internal/http"
	repository "task-board-system.com/task-board-system/internal/repositories"
	"task-board-system.com/task-board-system/internal/services"
	"task-board-system.com/task-board-system/internal/sessions"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		db := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(db)
		memberRepo := repository.NewMemberRepository(db)
		commentRepo := repository.NewCommentRepository(db)

		taskService := services.NewTaskService(taskRepo, commentRepo)
		memberService := services.NewMemberService(memberRepo)

		sessionStore := sessions.NewRedisSessionStore(redisClient)
		sessionService := services.NewSessionService(
			sessionStore,
			memberRepo,
			time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		)

		if err := memberService.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail); err != nil {
			log.Fatalf("failed to ensure admin account: %v", err)
		}

		boardSessions := board.NewSessionManager(
			time.Duration(cfg.CommitTimeoutSeconds)*time.Second,
			time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		)

		e := echo.New()

		handler := httpapi.NewHandler(taskService, memberService, sessionService, boardSessions)
		httpapi.Register(e, handler, cfg.RateLimit)

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
	rootCmd.AddCommand(serverCmd)
}
