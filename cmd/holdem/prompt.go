package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"holdemsim/pkg/playable/poker"
	"holdemsim/pkg/playable/poker/action"
)

// prompter reads a human's decisions from the terminal
// Input is validated here, so the table only ever sees well-formed actions
type prompter struct {
	scanner *bufio.Scanner
	display *display
}

func newPrompter(in io.Reader, d *display) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		display: d,
	}
}

func (p *prompter) readLine(prompt string) (string, error) {
	pterm.Fprint(p.display.out, pterm.LightCyan(prompt)+" ")
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// RequestAction asks the human what to do until a valid answer is given
func (p *prompter) RequestAction(ctx context.Context, state poker.State) (action.Action, int, error) {
	p.display.turn(state)

	choices := "[f]old, [c]all, [r]aise, [a]ll in"
	if state.CanCheck() {
		choices = "[f]old, [c]heck, [r]aise, [a]ll in"
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		line, err := p.readLine(choices + ":")
		if err != nil {
			return "", 0, err
		}

		act, err := action.FromString(line)
		if err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}

		if act != action.Raise {
			return act, 0, nil
		}

		amount, err := p.raiseAmount(state)
		if errors.Is(err, errRetry) {
			continue
		} else if err != nil {
			return "", 0, err
		}

		return act, amount, nil
	}
}

var errRetry = errors.New("retry")

func (p *prompter) raiseAmount(state poker.State) (int, error) {
	minimum := state.ToCall() + state.BigBlind
	if minimum > state.Stack {
		minimum = state.Stack
	}

	line, err := p.readLine("Chips to add (min $" + strconv.Itoa(minimum) + ", max $" + strconv.Itoa(state.Stack) + "):")
	if err != nil {
		return 0, err
	}

	amount, err := strconv.Atoi(strings.TrimPrefix(line, "$"))
	if err != nil || amount <= 0 {
		pterm.Warning.Println("enter a positive whole number of chips")
		return 0, errRetry
	}

	return amount, nil
}

// confirm asks a yes/no question, an unreadable answer is a no
func (p *prompter) confirm(question string) bool {
	for {
		line, err := p.readLine(question + " [y/n]")
		if err != nil {
			return false
		}

		switch strings.ToLower(line) {
		case "y", "yes", "":
			return true
		case "n", "no", "q", "quit":
			return false
		}
	}
}
