// Package runtime routes parsed commands to the shared message log and drives
// the foreground command loop.
// It orchestrates the board without containing domain rules.
package runtime

import (
	"fmt"
	"log/slog"
	"message-board/contract"
	"message-board/domain"
	"message-board/errors"
	"message-board/moderation"
	"time"
)

type Outcome int

const (
	Continue Outcome = iota
	Stop
)

const helpText = `Commands:
  <text>            - post a message as the current user
  /user <id>        - search messages by user ID
  /search <keyword> - search messages by keyword
  /history          - show all messages
  /switch <id>      - switch to user ID
  /add <name>       - add a new user
  /list             - list all users
  /help             - show this help
  /exit             - exit the application`

// Router translates one command into exactly one log operation and renders the result.
// It keeps no state between calls, the current user lives in the Session.
type Router struct {
	log       *slog.Logger
	messages  contract.IMessageLog
	users     *domain.Directory
	renderer  contract.Renderer
	moderator *moderation.Moderator
	now       func() time.Time
}

// NewRouter builds a Router. A nil moderator leaves posted content untouched.
func NewRouter(log *slog.Logger, messages contract.IMessageLog, users *domain.Directory,
	renderer contract.Renderer, moderator *moderation.Moderator, now func() time.Time) *Router {
	return &Router{
		log:       log,
		messages:  messages,
		users:     users,
		renderer:  renderer,
		moderator: moderator,
		now:       now,
	}
}

func (r *Router) Route(session *Session, cmd domain.Command) (Outcome, error) {
	r.log.Debug("Routing command", "session", session.ID, "command", cmd.Name())

	switch c := cmd.(type) {
	case domain.PostMessageCommand:
		return Continue, r.post(c)
	case domain.SearchBySenderCommand:
		r.renderer.Results(fmt.Sprintf("Messages from user %d:", c.SenderID), r.messages.FilterBySender(c.SenderID))
	case domain.SearchByKeywordCommand:
		r.renderer.Results(fmt.Sprintf("Messages containing '%s':", c.Keyword), r.messages.FilterByKeyword(c.Keyword))
	case domain.HistoryCommand:
		r.renderer.Results("All messages:", r.messages.All())
	case domain.SwitchUserCommand:
		r.switchUser(session, c.UserID)
	case domain.AddUserCommand:
		user, err := r.users.Add(c.UserName)
		if err != nil {
			return Continue, err
		}
		r.renderer.Notice(fmt.Sprintf("Added user '%s' with ID: %d", user.Name, user.ID))
	case domain.ListUsersCommand:
		r.renderer.Users(r.users.List(), session.UserID)
	case domain.HelpCommand:
		r.renderer.Notice(helpText)
	case domain.ExitCommand:
		r.renderer.Notice("Exiting chat. Bye!")
		return Stop, nil
	default:
		return Continue, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, cmd.Name())
	}
	return Continue, nil
}

func (r *Router) post(cmd domain.PostMessageCommand) error {
	sender, ok := r.users.Get(cmd.SenderID)
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrUnknownUser, cmd.SenderID)
	}

	content := cmd.Content
	if r.moderator != nil {
		var words []string
		if content, words = r.moderator.Censor(content); len(words) > 0 {
			r.log.Info("Message censored", "sender", sender.Name, "words", len(words))
		}
	}

	stored := r.messages.Append(domain.NewMessage(sender, content, r.now()))
	r.renderer.Message(stored)
	return nil
}

func (r *Router) switchUser(session *Session, id domain.UserID) {
	if _, ok := r.users.Get(id); !ok {
		r.renderer.Notice(fmt.Sprintf("User ID %d not found", id))
		return
	}
	session.UserID = id
	r.renderer.Notice(fmt.Sprintf("Switched to user ID: %d", id))
}
