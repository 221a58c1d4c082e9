package workers

import (
	"context"
	"fmt"
	"log/slog"
	"message-board/contract"
	"message-board/domain"
	"time"

	"github.com/samber/lo"
)

// ScriptLine is one simulated post.
type ScriptLine struct {
	SenderID domain.UserID
	Content  string
}

// Producer appends a fixed script of simulated messages to the shared log,
// one line per interval, then stops.
// It holds its own copy of the senders and shares nothing with the command
// loop except the log and the renderer.
type Producer struct {
	log      *slog.Logger
	messages contract.IMessageLog
	renderer contract.Renderer
	senders  map[domain.UserID]domain.User
	script   []ScriptLine
	interval time.Duration
	now      func() time.Time
}

func NewProducer(log *slog.Logger, messages contract.IMessageLog, renderer contract.Renderer,
	senders []domain.User, script []ScriptLine, interval time.Duration, now func() time.Time) *Producer {
	return &Producer{
		log:      log,
		messages: messages,
		renderer: renderer,
		senders:  lo.KeyBy(senders, func(u domain.User) domain.UserID { return u.ID }),
		script:   append([]ScriptLine(nil), script...),
		interval: interval,
		now:      now,
	}
}

// Run posts the script in order. It returns nil once the script is exhausted
// and ctx.Err() if the context ends first.
// A script line naming an unknown sender is a configuration bug and panics.
func (p *Producer) Run(ctx context.Context) error {
	for i, line := range p.script {
		if err := ctx.Err(); err != nil {
			return err
		}
		sender, ok := p.senders[line.SenderID]
		if !ok {
			panic(fmt.Sprintf("script line %d: sender %d is not in the roster", i, line.SenderID))
		}

		stored := p.messages.Append(domain.NewMessage(sender, line.Content, p.now()))
		p.log.Debug("Simulated message appended", "id", stored.ID, "sender", sender.Name)
		p.renderer.Message(stored)

		if i == len(p.script)-1 {
			break
		}
		select {
		case <-ctx.Done():
			p.log.Debug("Stopping producer", "remaining", len(p.script)-i-1)
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
	p.log.Info("Simulation finished", "messages", len(p.script))
	return nil
}
