//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"message-board/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context) error
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IMessageLog is the shared log seen by the router and the producer.
type IMessageLog interface {
	Append(message domain.Message) domain.Message
	All() []domain.Message
	FilterBySender(senderID domain.UserID) []domain.Message
	FilterByKeyword(keyword string) []domain.Message
}

// Renderer writes board output for a human.
// Implementations must be safe for concurrent use, the producer and the
// command loop render at the same time.
type Renderer interface {
	Message(message domain.Message)
	Results(header string, messages []domain.Message)
	Users(users []domain.User, current domain.UserID)
	Notice(text string)
	Error(err error)
}
