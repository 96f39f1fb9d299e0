package commands

import (
	"context"
	"fmt"
	"strings"
)

// HelpHandlerFactory creates handlers that list the available commands.
type HelpHandlerFactory struct {
	handler *Handler
	pub     Publisher
}

func NewHelpHandlerFactory(handler *Handler, pub Publisher) *HelpHandlerFactory {
	return &HelpHandlerFactory{handler: handler, pub: pub}
}

func (f *HelpHandlerFactory) Spec() *Spec {
	return &Spec{
		Name:        "help",
		Aliases:     []string{"?"},
		Usage:       "help",
		Description: "show this help",
	}
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, inv *Invocation) error {
		lines := []string{"Available commands:"}
		for _, spec := range f.handler.Specs() {
			lines = append(lines, fmt.Sprintf("  %-18s %s", spec.Usage, spec.Description))
		}
		lines = append(lines, "You can also type a direction (north, s, e, ...) to move.")

		return f.pub.PublishToPlayer(inv.Player, []byte(strings.Join(lines, "\n")))
	}, nil
}
