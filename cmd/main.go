package main

import (
	"context"
	"fmt"
	"log/slog"
	"message-board/domain"
	"message-board/internal"
	"message-board/moderation"
	"message-board/runtime"
	"message-board/runtime/workers"
	"message-board/ui"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the board, starts the producer under supervision and blocks on the
// command loop. Deferred cleanup runs before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Shared log, users and console
	messages := domain.NewMessageLog()
	users := domain.NewDirectory(time.Now)
	roster := make([]domain.User, 0, len(workers.DefaultRoster))
	for _, name := range workers.DefaultRoster {
		user, err := users.Add(name)
		if err != nil {
			return fmt.Errorf("roster error: %w", err)
		}
		roster = append(roster, user)
	}
	console := ui.NewConsole(os.Stdout, config.Colours, time.Local)

	moderator, err := newModerator(config, log)
	if err != nil {
		return err
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fi, err := os.Stdin.Stat()
	if err != nil {
		return fmt.Errorf("stdin error: %w", err)
	}
	interactive := fi.Mode()&os.ModeCharDevice != 0

	router := runtime.NewRouter(log, messages, users, console, moderator, time.Now)
	loop := runtime.NewLoop(log, router, console, runtime.Lines(ctx, log, os.Stdin), interactive)

	console.Notice("=== Message board ===")
	session, err := loop.Login(ctx, users, config.Username)
	if err != nil {
		return err
	}
	console.Notice(fmt.Sprintf("Simulated users: %s. Type /help for commands.", strings.Join(workers.DefaultRoster, ", ")))

	// 4. Background producer
	fatal := make(chan error, 1)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	if config.Simulation {
		producer := workers.NewProducer(log, messages, console, roster, workers.DefaultScript, config.ProducerInterval, time.Now)
		go func() {
			if err := sup.Add(producer).Run(ctx); err != nil {
				fatal <- err
			}
		}()
	}

	// 5. Foreground loop until exit, end of input or a fatal worker error
	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(ctx, session) }()

	select {
	case err = <-loopDone:
	case err = <-fatal:
		log.Error("Shared log can no longer be trusted", "error", err)
	}

	// 6. Final Cleanup
	sup.Stop()
	log.Info("Program stopped cleanly", "messages", messages.Len())
	return err
}

func newModerator(config internal.Config, log *slog.Logger) (*moderation.Moderator, error) {
	words := config.CensoredList()
	if len(words) == 0 {
		return nil, nil
	}
	char, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return moderation.NewModerator(words, char, log)
}
