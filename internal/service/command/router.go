package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
)

type Router struct {
	commands  map[string]core.Command
	formatter *ResponseFormatter
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands:  make(map[string]core.Command),
		formatter: NewResponseFormatter(),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Execute runs input when it is a slash command. It reports false for
// anything else, which the host treats as a chat message.
func (c *Router) Execute(ctx context.Context, input string) (string, bool) {
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	head, args, _ := strings.Cut(input, " ")
	name := strings.TrimPrefix(head, "/")

	if name == "help" {
		return c.help(), true
	}

	cmd, ok := c.commands[name]
	if !ok {
		return c.formatter.Error(fmt.Errorf("unknown command: /%s", name)), true
	}

	result, err := cmd.Execute(ctx, strings.TrimSpace(args))
	if err != nil {
		return c.formatter.Error(err), true
	}
	return result, true
}

// ListCommands returns the registered commands sorted by name.
func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	slices.SortFunc(res, func(a, b core.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return res
}

func (c *Router) help() string {
	items := make([]string, 0, len(c.commands)+1)
	for _, cmd := range c.ListCommands() {
		items = append(items, fmt.Sprintf("/%-6s %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, fmt.Sprintf("%-7s %s", "exit", "Quit"))

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
		c.formatter.Tip("anything else is sent as a user message"),
	)
}
