package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/softsales/api/internal/api"
	"github.com/softsales/api/internal/clients/exchangerate"
	"github.com/softsales/api/internal/repository"
	"github.com/softsales/api/internal/service"
	"github.com/softsales/api/pkg/broker"
	"github.com/softsales/api/pkg/config"
	"github.com/softsales/api/pkg/job"
	"github.com/softsales/api/pkg/logger"
	"github.com/softsales/api/pkg/postgres"
	"github.com/softsales/api/pkg/security"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(pool)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	rates := exchangerate.NewClient(cfg.ExchangeRate)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.AgreementSignedTopic)
	defer producer.Close()

	s := service.New(repo, rates, producer, nil)

	decodedKey, err := base64.StdEncoding.DecodeString(cfg.Auth.PrivateKey)
	panicOnErr("decode auth private key", err)

	privateKey, err := security.ParsePrivateKey(decodedKey)
	panicOnErr("parse auth private key", err)

	decodedPub, err := base64.StdEncoding.DecodeString(cfg.Auth.PublicKey)
	panicOnErr("decode auth public key", err)

	publicKey, err := security.ParsePublicKey(decodedPub)
	panicOnErr("parse auth public key", err)

	authService := service.NewAuth(repo, privateKey, publicKey, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, nil)

	runner := job.NewRunner().
		Register("clean expired refresh tokens", time.Hour, authService.CleanExpiredRefreshTokens)
	runner.Start(ctx)

	handler := api.NewHandler(s, authService)
	mw := api.NewMiddleware(authService)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		runner.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
