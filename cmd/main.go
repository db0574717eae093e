package main

import (
	"context"
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

	"github.com/clientnudge/invoicing/internal/api"
	"github.com/clientnudge/invoicing/internal/clients/llm"
	"github.com/clientnudge/invoicing/internal/clients/razorpay"
	"github.com/clientnudge/invoicing/internal/clients/resend"
	"github.com/clientnudge/invoicing/internal/clients/smtp"
	"github.com/clientnudge/invoicing/internal/clients/stripe"
	"github.com/clientnudge/invoicing/internal/repository"
	"github.com/clientnudge/invoicing/internal/service"
	"github.com/clientnudge/invoicing/pkg/broker"
	"github.com/clientnudge/invoicing/pkg/config"
	"github.com/clientnudge/invoicing/pkg/job"
	"github.com/clientnudge/invoicing/pkg/logger"
	"github.com/clientnudge/invoicing/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	sender := newSender(cfg.Mailer)
	generator := llm.New(cfg.LLM)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoicePaidTopic)
	defer producer.Close()

	stripeClient := stripe.New(cfg.Stripe)
	razorpayClient := razorpay.New(cfg.Razorpay)

	s := service.New(repo, sender, generator, producer, stripeClient, razorpayClient, cfg.HTTP.FrontendURL)

	{
		job.NewService().
			RegisterJob("reminder sweep", cfg.Sweep.ReminderInterval, s.RunReminderSweep).
			RegisterJob("subscription sweep", cfg.Sweep.SubscriptionInterval, s.RunSubscriptionSweep).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s, cfg.Auth.JWTSecret)

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
	}()

	wg.Wait()
}

func newSender(cfg config.Mailer) service.Sender {
	if cfg.Driver == "smtp" {
		return smtp.New(cfg)
	}

	return resend.New(cfg)
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
