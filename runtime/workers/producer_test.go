package workers

import (
	"context"
	"fmt"
	"log/slog"
	"message-board/domain"
	"message-board/errors"
	"message-board/mocks"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var clock = func() time.Time { return time.Unix(1700000000, 0) }

func roster() []domain.User {
	return lo.Map(DefaultRoster, func(name string, i int) domain.User {
		return domain.User{ID: domain.UserID(i + 1), Name: name}
	})
}

func TestProducer_PlaysScriptInOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	messages := domain.NewMessageLog()

	// Given every stored message is rendered once
	var rendered []uint64
	renderer.EXPECT().Message(gomock.Any()).
		Do(func(m domain.Message) { rendered = append(rendered, m.ID) }).
		Times(len(DefaultScript))

	producer := NewProducer(log, messages, renderer, roster(), DefaultScript, time.Millisecond, clock)

	// When the producer runs to completion
	err := producer.Run(context.Background())

	// Then the whole script is in the log, in order
	req.NoError(err)
	all := messages.All()
	req.Len(all, len(DefaultScript))
	for i, line := range DefaultScript {
		req.Equal(line.SenderID, all[i].SenderID)
		req.Equal(line.Content, all[i].Content)
		req.Equal(DefaultRoster[line.SenderID-1], all[i].SenderName)
		req.Equal(int64(1700000000), all[i].Timestamp)
	}
	req.Equal([]uint64{1, 2, 3, 4, 5, 6}, rendered)
}

func TestProducer_WaitsBetweenMessages(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Message(gomock.Any()).AnyTimes()

	script := DefaultScript[:3]
	interval := 20 * time.Millisecond
	producer := NewProducer(log, domain.NewMessageLog(), renderer, roster(), script, interval, clock)

	start := time.Now()
	req.NoError(producer.Run(context.Background()))

	// Then it paused between lines but not after the last one
	req.GreaterOrEqual(time.Since(start), 2*interval)
}

func TestProducer_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	messages := domain.NewMessageLog()

	ctx, cancel := context.WithCancel(context.Background())
	// Given the context is cancelled as soon as the first message is rendered
	renderer.EXPECT().Message(gomock.Any()).Do(func(domain.Message) { cancel() }).Times(1)

	producer := NewProducer(log, messages, renderer, roster(), DefaultScript, time.Hour, clock)

	done := make(chan error, 1)
	go func() { done <- producer.Run(ctx) }()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
		req.Equal(1, messages.Len())
	case <-time.After(time.Second):
		req.Fail("Producer should have stopped on cancel")
	}
}

func TestProducer_UnknownSenderPanics(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	script := []ScriptLine{{SenderID: 42, Content: "ghost"}}
	producer := NewProducer(log, domain.NewMessageLog(), renderer, roster(), script, time.Millisecond, clock)

	require.Panics(t, func() { _ = producer.Run(context.Background()) })
}

func TestProducer_UnknownSenderIsFatalUnderSupervision(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Message(gomock.Any()).Times(1)
	messages := domain.NewMessageLog()

	script := []ScriptLine{{SenderID: 1, Content: "ok"}, {SenderID: 9, Content: "ghost"}}
	producer := NewProducer(log, messages, renderer, roster(), script, time.Millisecond, clock)

	err := NewSupervisor(log, time.Millisecond).Add(producer).Run(context.Background())

	req.ErrorIs(err, errors.ErrWorkerPanic)
	req.Equal(1, messages.Len())
}

func TestProducer_RunsAlongsideForegroundAppends(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().Message(gomock.Any()).AnyTimes()
	messages := domain.NewMessageLog()

	script := lo.Times(100, func(i int) ScriptLine {
		return ScriptLine{SenderID: domain.UserID(i%5 + 1), Content: fmt.Sprintf("sim-%d", i)}
	})
	producer := NewProducer(log, messages, renderer, roster(), script, 0, clock)

	var wg sync.WaitGroup
	var producerErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		producerErr = producer.Run(context.Background())
	}()
	go func() {
		defer wg.Done()
		guest := domain.User{ID: 6, Name: "Guest"}
		for i := 0; i < 100; i++ {
			messages.Append(domain.NewMessage(guest, fmt.Sprintf("typed-%d", i), clock()))
			_ = messages.FilterByKeyword("SIM")
		}
	}()
	wg.Wait()

	req.NoError(producerErr)
	req.Len(messages.All(), 200)
	req.Len(messages.FilterBySender(6), 100)
	req.Len(messages.FilterByKeyword("sim-"), 100)
}
