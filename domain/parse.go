package domain

import (
	"fmt"
	"message-board/errors"
	"strconv"
	"strings"
	"unicode"
)

const commandPrefix = "/"

// ParseCommand turns one input line into a Command.
// The command token ends at the first whitespace, the argument is the rest of
// the line without its leading whitespace. Any line that does not start with
// the command prefix is a message posted by current.
// An empty line yields a nil Command and no error.
func ParseCommand(line string, current UserID) (Command, error) {
	input := strings.TrimSpace(line)
	if input == "" {
		return nil, nil
	}
	if !strings.HasPrefix(input, commandPrefix) {
		return PostMessageCommand{SenderID: current, Content: input}, nil
	}

	token, arg := splitToken(input)
	switch token {
	case "/exit":
		return ExitCommand{}, nil
	case "/user":
		id, err := parseUserID(token, arg)
		if err != nil {
			return nil, err
		}
		return SearchBySenderCommand{SenderID: id}, nil
	case "/search":
		return SearchByKeywordCommand{Keyword: arg}, nil
	case "/history":
		return HistoryCommand{}, nil
	case "/switch":
		id, err := parseUserID(token, arg)
		if err != nil {
			return nil, err
		}
		return SwitchUserCommand{UserID: id}, nil
	case "/add":
		return AddUserCommand{UserName: arg}, nil
	case "/list":
		return ListUsersCommand{}, nil
	case "/help":
		return HelpCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, token)
	}
}

func splitToken(input string) (string, string) {
	idx := strings.IndexFunc(input, unicode.IsSpace)
	if idx < 0 {
		return input, ""
	}
	return input[:idx], strings.TrimLeftFunc(input[idx:], unicode.IsSpace)
}

func parseUserID(token, arg string) (UserID, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects a numeric id, got %q", errors.ErrInvalidUserID, token, arg)
	}
	return UserID(id), nil
}
