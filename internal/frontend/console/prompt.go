package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/cory-johannsen/arena/internal/game/arena"
	"github.com/cory-johannsen/arena/internal/game/character"
)

// inputLine is one read from the player's input: a line of text, or the error
// that ended input.
type inputLine struct {
	text string
	err  error
}

// Prompter asks the player questions over a line-oriented reader.
//
// Input is scanned on a background goroutine; a prompt returns as soon as its
// ctx is cancelled, even if the player never answers.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan inputLine
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan inputLine)}
}

// scan forwards every line of p.in to p.lines, then the terminating error,
// then closes the channel.
func (p *Prompter) scan() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- inputLine{text: sc.Text()}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	} else {
		err = fmt.Errorf("reading input: %w", err)
	}
	p.lines <- inputLine{err: err}
}

// readLine prints question and returns the trimmed answer.
//
// Postcondition: Returns io.EOF once input is exhausted, or ctx.Err() if ctx
// is cancelled while waiting for an answer.
func (p *Prompter) readLine(ctx context.Context, question string) (string, error) {
	p.once.Do(func() { go p.scan() })
	fmt.Fprint(p.out, question)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// ChooseFighter asks for a roster index until the answer selects a fighter.
// Non-numeric and out-of-range answers print a reason and ask again.
//
// Postcondition: Returns a fighter from roster, io.EOF if input ended first,
// or ctx.Err() if ctx was cancelled at the prompt.
func (p *Prompter) ChooseFighter(ctx context.Context, roster []*character.Fighter) (*character.Fighter, error) {
	question := fmt.Sprintf("Choose your fighter (a number from 0 to %d): ", len(roster)-1)
	for {
		answer, err := p.readLine(ctx, question)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a number.\n", answer)
			continue
		}
		f, err := arena.Select(roster, idx)
		var selErr *arena.SelectionError
		if errors.As(err, &selErr) {
			fmt.Fprintf(p.out, "%s, try again.\n", selErr)
			continue
		}
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(p.out)
		return f, nil
	}
}

// PlayAgain asks whether to start another game. Only "y" or "Y" means yes;
// exhausted input means no.
func (p *Prompter) PlayAgain(ctx context.Context) (bool, error) {
	answer, err := p.readLine(ctx, "Wanna play again? (y/n) ")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
