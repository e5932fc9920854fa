// Package view renders command results. The command layer talks to a
// Display and never formats output itself.
package view

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// ErrUnknownFormat is returned by New for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Display renders messages, contact listings, and the command list.
type Display interface {
	DisplayMessage(text string)
	DisplayContacts(records []*types.Record)
	DisplayCommands()
}

// Verify at compile time that every renderer implements Display.
var (
	_ Display = (*Console)(nil)
	_ Display = (*JSON)(nil)
	_ Display = (*YAML)(nil)
)

// Command describes one entry of the command list.
type Command struct {
	Usage       string `json:"usage" yaml:"usage"`
	Description string `json:"description" yaml:"description"`
}

// Commands is the list shown by DisplayCommands, in display order.
var Commands = []Command{
	{Usage: "add <name> <phone>", Description: "Add a contact or a phone to an existing contact"},
	{Usage: "change <name> <old_phone> <new_phone>", Description: "Change a contact's phone"},
	{Usage: "phone <name>", Description: "Show a contact's phones"},
	{Usage: "remove-phone <name> <phone>", Description: "Remove a phone from a contact"},
	{Usage: "delete <name>", Description: "Delete a contact"},
	{Usage: "add-birthday <name> <DD.MM.YYYY>", Description: "Set a contact's birthday"},
	{Usage: "show-birthday <name>", Description: "Show a contact's birthday"},
	{Usage: "birthdays", Description: "Show birthdays in the coming week"},
	{Usage: "all", Description: "Show all contacts"},
	{Usage: "hello", Description: "Greet the assistant"},
	{Usage: "help", Description: "Show this list"},
	{Usage: "exit | close", Description: "Quit"},
}

// EmptyBookMessage is shown when there are no contacts to list.
const EmptyBookMessage = "Address book is empty."

// Options configures display creation.
type Options struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Disable styling even on a TTY.
}

// New returns the Display for format: "console" (or ""), "json", or "yaml".
func New(format string, opts Options) (Display, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	switch format {
	case types.OutputConsole, "":
		return NewConsole(opts.Writer, !opts.ForcePlain && isTTY(opts.Writer)), nil
	case types.OutputJSON:
		return NewJSON(opts.Writer), nil
	case types.OutputYAML:
		return NewYAML(opts.Writer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// contact is the serialized form of a record used by the JSON and YAML
// renderers.
type contact struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

func toContacts(records []*types.Record) []contact {
	out := make([]contact, 0, len(records))
	for _, r := range records {
		c := contact{ID: r.ID, Name: r.Name().String(), Phones: []string{}}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			c.Birthday = bd.String()
		}
		out = append(out, c)
	}
	return out
}
