package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/jonny/ticketsbot/internal/adapter/inbound/discordbot"
	"github.com/jonny/ticketsbot/internal/adapter/outbound/discord"
	"github.com/jonny/ticketsbot/internal/adapter/outbound/notification"
	slacknotifier "github.com/jonny/ticketsbot/internal/adapter/outbound/notification/slack"
	"github.com/jonny/ticketsbot/internal/adapter/outbound/persistence/memory"
	"github.com/jonny/ticketsbot/internal/config"
	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
	"github.com/jonny/ticketsbot/internal/domain/service"
	"github.com/jonny/ticketsbot/pkg/health"
	"github.com/jonny/ticketsbot/pkg/version"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Optional .env for local development; the config file reads ${DISCORD_TOKEN}.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = buildLogger(cfg.Logging)

	// --- Discord session ---
	session, err := discordbot.NewSession(cfg.Discord.Token)
	if err != nil {
		logger.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}

	// --- Adapters ---
	repo := memory.NewTicketRepo()
	provisioner := discord.NewProvisioner(session)
	messenger := discord.NewMessenger(session, discord.MessengerConfig{Prefix: cfg.Discord.Prefix})

	var notifier outbound.Notifier
	if cfg.Slack.Enabled {
		notifier = slacknotifier.NewNotifier(slacknotifier.Config{
			BotToken: cfg.Slack.BotToken,
			Channel:  cfg.Slack.Channel,
		})
	} else {
		logger.Info("slack notifications disabled")
		notifier = notification.NewNoopNotifier(logger)
	}

	// --- Domain services ---
	manager := service.NewManager(service.ManagerConfig{
		CategoryName:   cfg.Discord.CategoryName,
		LogChannelName: cfg.Discord.LogChannel,
		CloseDelay:     cfg.Discord.CloseDelay,
	}, repo, provisioner, messenger, notifier, logger)

	bot := discordbot.NewBot(session, discordbot.Config{Prefix: cfg.Discord.Prefix}, manager, logger)

	// --- Health checker ---
	checker := health.NewChecker()
	checker.Register("gateway", func(ctx context.Context) error {
		if !bot.HeartbeatHealthy() {
			return errors.New("gateway heartbeat not established")
		}
		return nil
	})

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/healthz", checker.LivenessHandler())
	healthMux.HandleFunc("/readyz", checker.ReadinessHandler())
	healthServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HealthPort),
		Handler: healthMux,
	}

	// --- Signal handling & startup ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting discord bot")
		return bot.Start(gCtx)
	})

	g.Go(func() error {
		logger.Info("starting health server", "port", cfg.Server.HealthPort)
		errCh := make(chan error, 1)
		go func() {
			if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()
		select {
		case <-gCtx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return healthServer.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	})

	logger.Info("ticketsbot started", "version", version.String())

	if err := g.Wait(); err != nil {
		logger.Error("bot exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("ticketsbot stopped")
}

// buildLogger constructs a slog.Logger based on config.
func buildLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
