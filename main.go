package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-warehouse/app/cmd"
	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/routes"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()

	logger, err := configs.NewLogger(env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if len(os.Args) > 1 {
		cmd.RunCli(env, logger)
		return
	}

	db, err := configs.OpenConnection(env, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	svc, err := services.NewServices(db, "mysql", logger)
	if err != nil {
		logger.Fatal("failed to build services", zap.Error(err))
	}

	server := &http.Server{
		Addr:              env.Port,
		Handler:           routes.NewRouter(svc, env, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
