// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/clarete/lispinho/pkg/environ"
	"github.com/clarete/lispinho/pkg/eval"
	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/reader"
)

// LineReader is a source of input lines.  *readline.Instance is a
// LineReader.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Session is the state of one interactive session.  All lines are evaluated
// in the same environment.
type Session struct {
	Prompt  string
	Runtime *eval.Runtime
	Reader  *reader.Reader
	Env     *environ.Environ
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewSession returns a Session evaluating in a fresh default environment of
// rt.
func NewSession(prompt string, rt *eval.Runtime) *Session {
	return &Session{
		Prompt:  prompt,
		Runtime: rt,
		Reader:  reader.New(rt.Table),
		Env:     rt.DefaultEnv(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run runs a repl on the terminal until input is exhausted.
func Run(prompt string) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	rt := eval.New(eval.WithStdout(rl.Stdout()))
	s := NewSession(prompt, rt)
	s.Stdout = rl.Stdout()
	s.Stderr = rl.Stderr()
	return s.Serve(rl)
}

// Serve reads lines until lines returns io.EOF.  Input that ends inside an
// unterminated list is kept and joined with the following lines.  An
// interrupt discards kept input.
func (s *Session) Serve(lines LineReader) error {
	contPrompt := strings.Repeat(" ", len(s.Prompt)) // prompt had better be ascii...

	var buf []string
	for {
		line, err := lines.Readline()
		if err == readline.ErrInterrupt {
			buf = nil
			lines.SetPrompt(s.Prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			line = strings.Join(append(buf, line), "\n")
			buf = nil
			lines.SetPrompt(s.Prompt)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !s.evalLine(line) {
			buf = append(buf, line)
			lines.SetPrompt(contPrompt)
		}
	}
}

// evalLine evaluates each form in line and prints non-nil results.  evalLine
// returns false if line is an incomplete expression.
func (s *Session) evalLine(line string) bool {
	forms, err := s.Reader.ReadForms(line)
	if err != nil {
		var perr *reader.ParseError
		if errors.As(err, &perr) && perr.Incomplete {
			return false
		}
		s.errln(err)
		return true
	}
	for _, form := range forms {
		v, err := s.Runtime.Eval(form, s.Env)
		if err != nil {
			s.errln(err)
			return true
		}
		if !lisp.IsNil(v) {
			fmt.Fprintln(s.Stdout, s.Runtime.Sprint(v))
		}
	}
	return true
}

func (s *Session) errln(v ...interface{}) {
	fmt.Fprintln(s.Stderr, v...)
}
