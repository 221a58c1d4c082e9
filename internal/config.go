package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	LogLevel         string        `env:"LOG_LEVEL,default=WARN"`
	ProducerInterval time.Duration `env:"PRODUCER_INTERVAL,default=1s"`
	RestartInterval  time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	Username         string        `env:"BOARD_USERNAME"`
	Colours          bool          `env:"COLOURS,default=true"`
	CensoredWords    string        `env:"CENSORED_WORDS"`
	CharReplacement  string        `env:"CHARACTER_REPLACEMENT,default=*"`
	Simulation       bool          `env:"SIMULATION,default=true"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// CensoredList splits the comma separated dictionary, dropping blanks.
func (c Config) CensoredList() []string {
	words := lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Compact(words)
}
