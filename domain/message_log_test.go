package domain

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var (
	alice = User{ID: 1, Name: "Alice"}
	bob   = User{ID: 2, Name: "Bob"}
)

func contents(messages []Message) []string {
	return lo.Map(messages, func(m Message, _ int) string { return m.Content })
}

func TestMessageLog_Append_AssignsSequentialIDs(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()
	at := time.Unix(1700000000, 0)

	// Given a caller trying to choose its own ID
	msg := NewMessage(alice, "Hi", at)
	msg.ID = 42

	// When two messages are appended
	first := log.Append(msg)
	second := log.Append(NewMessage(bob, "Hello", at))

	// Then the log assigned IDs itself
	req.Equal(uint64(1), first.ID)
	req.Equal(uint64(2), second.ID)
	req.Equal(int64(1700000000), first.Timestamp)
	req.Equal("Alice", first.SenderName)
	req.Equal([]Message{first, second}, log.All())
	req.Equal(2, log.Len())
}

func TestMessageLog_FilterScenario(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()
	now := time.Now()

	log.Append(NewMessage(alice, "Hi", now))
	log.Append(NewMessage(bob, "Hello there", now))
	log.Append(NewMessage(alice, "Bye", now))

	req.Equal([]string{"Hi", "Bye"}, contents(log.FilterBySender(1)))
	req.Equal([]string{"Hello there"}, contents(log.FilterByKeyword("hell")))
	req.Empty(log.FilterBySender(99))
}

func TestMessageLog_FilterByKeyword(t *testing.T) {
	log := NewMessageLog()
	now := time.Now()
	log.Append(NewMessage(alice, "Hello World", now))
	log.Append(NewMessage(bob, "", now))
	log.Append(NewMessage(bob, "worldwide news", now))

	tests := []struct {
		name     string
		keyword  string
		expected []string
	}{
		{name: "Lower case keyword", keyword: "world", expected: []string{"Hello World", "worldwide news"}},
		{name: "Upper case keyword", keyword: "HELLO", expected: []string{"Hello World"}},
		{name: "Keyword spanning words", keyword: "o w", expected: []string{"Hello World"}},
		{name: "No match", keyword: "rust", expected: []string{}},
		{name: "Empty keyword matches everything", keyword: "", expected: []string{"Hello World", "", "worldwide news"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, contents(log.FilterByKeyword(tt.keyword)))
		})
	}
}

func TestMessageLog_EmptyReads(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	req.Empty(log.All())
	req.Empty(log.FilterBySender(1))
	req.Empty(log.FilterByKeyword(""))
	req.Equal(0, log.Len())
}

func TestMessageLog_All_IsIdempotentSnapshot(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()
	log.Append(NewMessage(alice, "Hi", time.Now()))

	first := log.All()
	second := log.All()
	req.Equal(first, second)

	// Mutating a snapshot never reaches the log
	first[0].Content = "tampered"
	req.Equal("Hi", log.All()[0].Content)
}

func TestMessageLog_FilterBySender_IsOrderedSubsequence(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()
	for i := 0; i < 30; i++ {
		sender := lo.Ternary(i%3 == 0, alice, bob)
		log.Append(NewMessage(sender, fmt.Sprintf("msg-%d", i), time.Now()))
	}

	all := log.All()
	filtered := log.FilterBySender(alice.ID)

	expected := lo.Filter(all, func(m Message, _ int) bool { return m.SenderID == alice.ID })
	req.Equal(expected, filtered)
	req.Len(filtered, 10)
	for i := 1; i < len(filtered); i++ {
		req.Less(filtered[i-1].ID, filtered[i].ID)
	}
}

func TestMessageLog_ConcurrentAppends(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()
	const appenders, perAppender = 2, 100

	var wg sync.WaitGroup
	for a := 0; a < appenders; a++ {
		wg.Add(1)
		go func(sender User) {
			defer wg.Done()
			for i := 0; i < perAppender; i++ {
				log.Append(NewMessage(sender, fmt.Sprintf("%d-%d", sender.ID, i), time.Now()))
			}
		}(User{ID: UserID(a + 1), Name: fmt.Sprintf("producer-%d", a)})
	}

	// Readers run while appends are in flight
	stop := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
				snapshot := log.All()
				for i, m := range snapshot {
					if m.ID != uint64(i+1) {
						t.Errorf("snapshot has a gap at %d: id=%d", i, m.ID)
						return
					}
				}
				_ = log.FilterByKeyword("1-")
			}
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()

	all := log.All()
	req.Len(all, appenders*perAppender)

	seen := lo.SliceToMap(all, func(m Message) (string, struct{}) { return m.Content, struct{}{} })
	req.Len(seen, appenders*perAppender)
	for a := 1; a <= appenders; a++ {
		for i := 0; i < perAppender; i++ {
			req.Contains(seen, fmt.Sprintf("%d-%d", a, i))
		}
		// Each appender's messages keep their program order
		own := contents(log.FilterBySender(UserID(a)))
		req.Len(own, perAppender)
		req.Equal(fmt.Sprintf("%d-0", a), own[0])
		req.Equal(fmt.Sprintf("%d-%d", a, perAppender-1), own[perAppender-1])
	}
	for i, m := range all {
		req.Equal(uint64(i+1), m.ID)
	}
}
