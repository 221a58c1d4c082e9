// Package domain contains core concepts of the message board.
// This file defines Message values and related rules.
// Messages are immutable once they are built.
package domain

import "time"

// UserID identifies a sender on the board.
type UserID uint64

// Message represents an immutable board entry.
// ID is zero until the message is stored in a MessageLog.
type Message struct {
	ID         uint64
	SenderID   UserID
	SenderName string // copy of the sender name when the message was built
	Content    string
	Timestamp  int64 // unix seconds
}

func NewMessage(sender User, content string, at time.Time) Message {
	return Message{
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Content:    content,
		Timestamp:  at.Unix(),
	}
}
