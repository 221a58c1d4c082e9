package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
	ErrInvalidUserID   = fmt.Errorf("invalid user id")
	ErrInvalidUserName = fmt.Errorf("invalid user name")
	ErrUnknownCommand  = fmt.Errorf("unknown command")
	ErrUnknownUser     = fmt.Errorf("unknown user")
)
