package runtime

import (
	"message-board/domain"

	"github.com/google/uuid"
)

// Session is the foreground context: who is typing.
type Session struct {
	ID     uuid.UUID
	UserID domain.UserID
}

func NewSession(userID domain.UserID) *Session {
	return &Session{ID: uuid.New(), UserID: userID}
}
