// Package prompt implements the interactive CLI surface: numbered menus and
// free-text prompts read line by line. There are no flags here; the session
// collects everything through these prompts.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// Prompter reads user input over a readline instance.
type Prompter struct {
	rl *readline.Instance
}

// New opens a readline instance on the controlling terminal.
func New() (*Prompter, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal input: %w", err)
	}
	return &Prompter{rl: rl}, nil
}

// Close releases the terminal.
func (p *Prompter) Close() error {
	return p.rl.Close()
}

// ClearScreen wipes the terminal before a menu, like the classic tool does.
func (p *Prompter) ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

// Select displays a numbered menu and loops until the user enters a valid
// choice. Returns the zero-based index of the selection.
func (p *Prompter) Select(title string, choices []string) (int, error) {
	fmt.Println(Title(title))
	for i, choice := range choices {
		fmt.Printf("%s %s\n", indexStyle.Render(fmt.Sprintf("%d.", i+1)), choice)
	}

	p.rl.SetPrompt("Enter the number of your choice: ")
	for {
		line, err := p.rl.Readline()
		if err != nil {
			return 0, fmt.Errorf("input aborted: %w", err)
		}

		idx, err := ParseChoice(line, len(choices))
		if err != nil {
			fmt.Println(ErrorMsg(err.Error()))
			continue
		}
		return idx, nil
	}
}

// Line prompts for one line of free text and trims surrounding whitespace.
func (p *Prompter) Line(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	if err != nil {
		return "", fmt.Errorf("input aborted: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ParseChoice validates a 1-based menu selection against n choices and
// returns the zero-based index.
func ParseChoice(line string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid input, please enter a number")
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("invalid choice, please select a number between 1 and %d", n)
	}
	return choice - 1, nil
}

// ParseTags splits a comma-separated tag line, trimming each tag and
// dropping empties. Order and duplicates are preserved.
func ParseTags(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(line, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
