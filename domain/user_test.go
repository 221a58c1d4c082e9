package domain

import (
	"message-board/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestDirectory_Add_AssignsSequentialIDs(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory(fixedClock)

	akito, err := directory.Add("Akito")
	req.NoError(err)
	kazuki, err := directory.Add("  Kazuki ")
	req.NoError(err)

	req.Equal(UserID(1), akito.ID)
	req.Equal(UserID(2), kazuki.ID)
	req.Equal("Kazuki", kazuki.Name)
	req.Equal(fixedClock(), kazuki.CreatedAt)
	req.Equal([]User{akito, kazuki}, directory.List())

	got, ok := directory.Get(2)
	req.True(ok)
	req.Equal(kazuki, got)
	_, ok = directory.Get(3)
	req.False(ok)
}

func TestDirectory_Add_RejectsInvalidNames(t *testing.T) {
	directory := NewDirectory(fixedClock)

	for _, name := range []string{"", "   ", strings.Repeat("x", 33)} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			_, err := directory.Add(name)
			req.ErrorIs(err, errors.ErrInvalidUserName)
		})
	}

	// Then rejected names never consume an ID
	user, err := directory.Add("Miku")
	require.NoError(t, err)
	require.Equal(t, UserID(1), user.ID)
}
