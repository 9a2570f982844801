package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrTooManyAttempts is returned when a question keeps getting invalid answers
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Options are options for the console
type Options struct {
	MaxAttempts int  // Default: 5, answers allowed per question
	Styled      bool // Default: false, render with terminal styles
}

// DefaultOptions returns the default console options
func DefaultOptions() Options {
	return Options{
		MaxAttempts: 5,
	}
}

// Console reads answers from the players and writes the table narration
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	pacer   *Pacer
	options Options
	logger  logrus.FieldLogger
}

// New returns a new console
// pacer may be nil, in which case narration is not paced.
func New(logger logrus.FieldLogger, in io.Reader, out io.Writer, pacer *Pacer, options Options) *Console {
	if options.MaxAttempts <= 0 {
		options.MaxAttempts = DefaultOptions().MaxAttempts
	}

	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		pacer:   pacer,
		options: options,
		logger:  logger,
	}
}

// Prompt asks question until the answer parses and validates.
// It gives up with ErrTooManyAttempts after MaxAttempts invalid answers. validate may be nil.
func Prompt[T any](c *Console, question string, parse func(string) (T, error), validate func(T) error) (T, error) {
	var zero T
	for attempt := 1; attempt <= c.options.MaxAttempts; attempt++ {
		c.Println(question)

		line, err := c.readLine()
		if err != nil {
			return zero, err
		}

		value, err := parse(line)
		if err == nil && validate != nil {
			err = validate(value)
		}

		if err == nil {
			return value, nil
		}

		c.logger.WithError(err).WithFields(logrus.Fields{
			"input":   line,
			"attempt": attempt,
		}).Debug("invalid answer")
		c.PrintError(err.Error())
	}

	return zero, ErrTooManyAttempts
}

// ReadInt asks for a whole number from min to max, inclusive
func (c *Console) ReadInt(question string, min, max int) (int, error) {
	return Prompt(c, question, parseInt, func(n int) error {
		if n < min || n > max {
			return fmt.Errorf("enter a number from %d to %d", min, max)
		}

		return nil
	})
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	return n, nil
}

// readLine returns the next line without its line ending.
// A final line without a newline is still returned; io.EOF comes on the next read.
func (c *Console) readLine() (string, error) {
	s, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}

	return strings.TrimSpace(s), nil
}

// Println writes a plain line
func (c *Console) Println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// PrintError writes a line in the error style
func (c *Console) PrintError(s string) {
	c.Println(c.render(ErrorStyle, s))
}

// Title writes the title banner
func (c *Console) Title(s string) {
	c.Println(c.render(TitleStyle, s))
	c.Println("")
}

func (c *Console) render(style renderer, s string) string {
	if !c.options.Styled {
		return s
	}

	return style.Render(s)
}
