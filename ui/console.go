// Package ui renders the board for a human on a terminal.
// It observes messages and users and never modifies domain state.
package ui

import (
	"fmt"
	"io"
	"message-board/domain"
	"strconv"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const noMessages = "No messages found."

// Console writes board lines to an io.Writer.
// Lines from concurrent callers never interleave.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	loc     *time.Location
	name    color.Style
	notice  color.Style
	failure color.Style
}

func NewConsole(out io.Writer, colours bool, loc *time.Location) *Console {
	return &Console{
		out:     out,
		colours: colours,
		loc:     loc,
		name:    color.New(color.FgCyan, color.OpBold),
		notice:  color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

// Message prints one line: [HH:MM:SS] sender: content
func (c *Console) Message(message domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeMessage(message)
}

// Results prints a header followed by every message, in order.
func (c *Console) Results(header string, messages []domain.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, header)
	if len(messages) == 0 {
		fmt.Fprintln(c.out, noMessages)
		return
	}
	for _, m := range messages {
		c.writeMessage(m)
	}
}

// Users prints the directory as a table, the current user is starred.
func (c *Console) Users(users []domain.User, current domain.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"", "ID", "Name", "Since"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	for _, u := range users {
		marker := ""
		if u.ID == current {
			marker = "*"
		}
		table.Append([]string{
			marker,
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.CreatedAt.In(c.loc).Format(time.TimeOnly),
		})
	}
	table.Render()
}

func (c *Console) Notice(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, c.paint(c.notice, text))
}

func (c *Console) Error(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, c.paint(c.failure, "error: "+err.Error()))
}

// Prompt prints the input marker without a newline.
func (c *Console) Prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, "> ")
}

func (c *Console) writeMessage(m domain.Message) {
	fmt.Fprintf(c.out, "[%s] %s: %s\n",
		time.Unix(m.Timestamp, 0).In(c.loc).Format(time.TimeOnly),
		c.paint(c.name, m.SenderName),
		m.Content,
	)
}

func (c *Console) paint(style color.Style, text string) string {
	if !c.colours {
		return text
	}
	return style.Render(text)
}
