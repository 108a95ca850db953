package uninstall

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalPrompter collects the uninstall choices interactively. It asks two
// independent yes/no questions for the optional data, then a final
// confirmation; declining the confirmation cancels the uninstall.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Collect implements Prompter.
func (p *TerminalPrompter) Collect() (Choice, bool, error) {
	reader := bufio.NewReader(p.In)

	var choice Choice
	var err error

	choice.RemoveDatabase, err = p.ask(reader, "Remove the reminder database (all saved reminders)?")
	if err != nil {
		return Choice{}, false, err
	}

	choice.RemoveSettings, err = p.ask(reader, "Remove the settings file?")
	if err != nil {
		return Choice{}, false, err
	}

	proceed, err := p.ask(reader, "Proceed with the uninstall?")
	if err != nil {
		return Choice{}, false, err
	}

	return choice, proceed, nil
}

// ask poses a single y/N question; anything other than an explicit yes is no.
func (p *TerminalPrompter) ask(reader *bufio.Reader, question string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
