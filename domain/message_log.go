package domain

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// MessageLog owns the ordered sequence of posted messages.
// It is append-only: no operation removes, reorders or edits a stored message.
//
// MessageLog is safe for concurrent use by multiple goroutines.
// Every append holds the write lock only while one element is pushed,
// and every read copies the sequence under the read lock before filtering,
// so a reader never observes a half-applied append.
type MessageLog struct {
	mu       sync.RWMutex
	messages []Message
	lastID   uint64
}

func NewMessageLog() *MessageLog {
	return &MessageLog{messages: nil}
}

// Append stores message at the end of the log and returns the stored copy.
// The ID is always assigned here, any caller value is overwritten.
func (l *MessageLog) Append(message Message) Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastID++
	message.ID = l.lastID
	l.messages = append(l.messages, message)
	return message
}

// All returns a point-in-time copy of every stored message in append order.
func (l *MessageLog) All() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]Message, len(l.messages))
	copy(snapshot, l.messages)
	return snapshot
}

// FilterBySender returns, in append order, the messages posted by senderID.
func (l *MessageLog) FilterBySender(senderID UserID) []Message {
	return lo.Filter(l.All(), func(m Message, _ int) bool {
		return m.SenderID == senderID
	})
}

// FilterByKeyword returns, in append order, the messages whose content contains
// keyword, ignoring case. An empty keyword matches every message.
func (l *MessageLog) FilterByKeyword(keyword string) []Message {
	kw := strings.ToLower(keyword)
	return lo.Filter(l.All(), func(m Message, _ int) bool {
		return strings.Contains(strings.ToLower(m.Content), kw)
	})
}

func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}
