package runtime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"message-board/contract"
	"message-board/domain"
)

// Console is a Renderer able to show an input prompt.
type Console interface {
	contract.Renderer
	Prompt()
}

// Lines reads r line by line on its own goroutine.
// The channel is closed at EOF or on a read error. A pending read is not
// interrupted by ctx, the goroutine is abandoned with the process.
func Lines(ctx context.Context, log *slog.Logger, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case lines <- scanner.Text():
			}
		}
		if err := scanner.Err(); err != nil {
			log.Error("Input read failed", "error", err)
		}
	}()
	return lines
}

// Loop is the foreground command loop.
type Loop struct {
	log         *slog.Logger
	router      *Router
	console     Console
	lines       <-chan string
	interactive bool
}

func NewLoop(log *slog.Logger, router *Router, console Console, lines <-chan string, interactive bool) *Loop {
	return &Loop{log: log, router: router, console: console, lines: lines, interactive: interactive}
}

// Login returns a session for name, asking for a name first when it is empty.
// Invalid names are reported and asked again.
func (l *Loop) Login(ctx context.Context, users *domain.Directory, name string) (*Session, error) {
	for {
		if name == "" {
			l.console.Notice("Enter your name:")
			line, err := l.next(ctx)
			if err != nil {
				return nil, fmt.Errorf("no user name provided: %w", err)
			}
			name = line
		}
		user, err := users.Add(name)
		if err == nil {
			l.console.Notice(fmt.Sprintf("Logged in as %s (ID: %d)", user.Name, user.ID))
			return NewSession(user.ID), nil
		}
		l.console.Error(err)
		name = ""
	}
}

// Run reads commands until Exit, end of input or ctx cancellation.
// Parse and routing errors are rendered and the loop keeps going.
func (l *Loop) Run(ctx context.Context, session *Session) error {
	l.log.Info("Command loop started", "session", session.ID, "user", session.UserID)
	for {
		line, err := l.next(ctx)
		if err != nil {
			// end of input or cancellation
			l.log.Info("Command loop stopped", "session", session.ID, "reason", err)
			return nil
		}

		cmd, err := domain.ParseCommand(line, session.UserID)
		if err != nil {
			l.console.Error(err)
			continue
		}
		if cmd == nil {
			continue
		}

		outcome, err := l.router.Route(session, cmd)
		if err != nil {
			l.console.Error(err)
			continue
		}
		if outcome == Stop {
			return nil
		}
	}
}

func (l *Loop) next(ctx context.Context) (string, error) {
	if l.interactive {
		l.console.Prompt()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
