package domain

// Command is one parsed user intent routed to the message log.
type Command interface {
	Name() string
}

type PostMessageCommand struct {
	SenderID UserID
	Content  string
}

type SearchBySenderCommand struct {
	SenderID UserID
}

type SearchByKeywordCommand struct {
	Keyword string
}

type HistoryCommand struct{}

type SwitchUserCommand struct {
	UserID UserID
}

type AddUserCommand struct {
	UserName string
}

type ListUsersCommand struct{}

type HelpCommand struct{}

type ExitCommand struct{}

func (PostMessageCommand) Name() string     { return "post" }
func (SearchBySenderCommand) Name() string  { return "user" }
func (SearchByKeywordCommand) Name() string { return "search" }
func (HistoryCommand) Name() string         { return "history" }
func (SwitchUserCommand) Name() string      { return "switch" }
func (AddUserCommand) Name() string         { return "add" }
func (ListUsersCommand) Name() string       { return "list" }
func (HelpCommand) Name() string            { return "help" }
func (ExitCommand) Name() string            { return "exit" }
