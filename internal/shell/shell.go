// Package shell is the command layer: it reads whitespace-delimited
// command lines, runs them against a types.Book, and hands the results
// to a view.Display.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/view"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// ErrMalformedCommand is returned by Dispatch when a command gets the
// wrong number of arguments. The book is not touched.
var ErrMalformedCommand = errors.New("malformed command")

// DefaultPrompt is printed before each command line is read.
const DefaultPrompt = "Enter a command: "

// Shell runs commands against a book. It processes one command at a
// time and is not safe for concurrent use.
type Shell struct {
	book      types.Book
	display   view.Display
	logger    *zap.Logger
	now       func() time.Time
	prompt    string
	promptOut io.Writer
	commands  map[string]command
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the source of "today" for birthday queries.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPrompt prints prompt to w before each line Run reads.
// By default no prompt is printed.
func WithPrompt(prompt string, w io.Writer) Option {
	return func(s *Shell) {
		s.prompt = prompt
		s.promptOut = w
	}
}

// New returns a Shell over book that reports through display.
func New(book types.Book, display view.Display, opts ...Option) *Shell {
	s := &Shell{
		book:      book,
		display:   display,
		logger:    zap.NewNop(),
		now:       time.Now,
		promptOut: io.Discard,
		commands:  commandTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxLineLength is the longest command line Run accepts, in bytes.
// Longer lines are discarded with a message and the loop goes on.
const MaxLineLength = 4096

// Run greets the user, then reads and executes lines from in until an
// exit command, end of input, or ctx is cancelled. Cancellation ends the
// session even while Run is waiting for input; it returns ctx.Err().
// Lines are read on a separate goroutine, which stays blocked on in
// until in returns data or an error.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.display.DisplayMessage(msgWelcome)
	s.display.DisplayCommands()

	lines := make(chan inputLine)
	done := make(chan struct{})
	defer close(done)
	go readLines(in, lines, done)

	for {
		if err := ctx.Err(); err != nil {
			return s.interrupted(err)
		}
		_, _ = io.WriteString(s.promptOut, s.prompt)

		var line inputLine
		select {
		case <-ctx.Done():
			return s.interrupted(ctx.Err())
		case line = <-lines:
		}

		switch {
		case errors.Is(line.err, io.EOF):
			s.logger.Debug("input closed")
			s.display.DisplayMessage(msgGoodbye)
			return nil
		case line.err != nil:
			return fmt.Errorf("read command: %w", line.err)
		case line.tooLong:
			s.logger.Debug("line too long", zap.Int("max", MaxLineLength))
			s.display.DisplayMessage(fmt.Sprintf(msgLineTooLongFmt, MaxLineLength))
		case s.Execute(line.text):
			return nil
		}
	}
}

func (s *Shell) interrupted(err error) error {
	s.logger.Debug("session interrupted", zap.Error(err))
	s.display.DisplayMessage(msgGoodbye)
	return err
}

// inputLine is one line read from the input, or the error that ended it.
type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// readLines sends every line of in to out, then the terminating error
// (io.EOF at end of input). It stops early once done is closed.
func readLines(in io.Reader, out chan<- inputLine, done <-chan struct{}) {
	br := bufio.NewReader(in)
	for {
		line := readLine(br)
		select {
		case out <- line:
		case <-done:
			return
		}
		if line.err != nil {
			return
		}
	}
}

// readLine reads one line without its line ending. A line longer than
// MaxLineLength is consumed in full but only reported as tooLong.
func readLine(br *bufio.Reader) inputLine {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return inputLine{err: err}
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return inputLine{text: string(buf), tooLong: tooLong}
		}
	}
}

// Execute runs one command line and displays its outcome. Every failure
// becomes a message; Execute only reports whether the user asked to quit.
func (s *Shell) Execute(line string) (quit bool) {
	msg, err := s.Dispatch(line)
	if errors.Is(err, errQuit) {
		s.display.DisplayMessage(msgGoodbye)
		return true
	}
	if err != nil {
		msg = s.describe(err)
	}
	if msg != "" {
		s.display.DisplayMessage(msg)
	}
	return false
}

// errQuit signals that the exit command was entered.
var errQuit = errors.New("quit")

// Dispatch parses line and runs the matching command, returning the
// message it produced. An empty line yields an empty message.
// Wrong argument counts return an error wrapping ErrMalformedCommand;
// field validation failures return the *types.ValidationError.
func (s *Shell) Dispatch(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	if name == "exit" || name == "close" {
		return "", errQuit
	}

	cmd, ok := s.commands[name]
	if !ok {
		s.logger.Debug("unknown command", zap.String("command", name))
		return msgInvalidCommand, nil
	}
	if len(args) != cmd.args {
		return "", &usageError{usage: cmd.usage}
	}

	s.logger.Debug("dispatching command", zap.String("command", name), zap.Int("args", len(args)))
	return cmd.run(s, args)
}

// describe turns a command error into the message shown to the user.
func (s *Shell) describe(err error) string {
	var (
		ue *usageError
		ve *types.ValidationError
	)
	switch {
	case errors.As(err, &ue):
		s.logger.Debug("malformed command", zap.String("usage", ue.usage))
		return fmt.Sprintf(msgUsageFmt, ue.usage)
	case errors.As(err, &ve):
		s.logger.Debug("validation failed", zap.Error(err))
		return ve.Message
	default:
		s.logger.Error("command failed", zap.Error(err))
		return fmt.Sprintf(msgErrorFmt, err)
	}
}

// usageError reports a wrong argument count.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s: usage: %s", ErrMalformedCommand, e.usage)
}

func (e *usageError) Unwrap() error {
	return ErrMalformedCommand
}
