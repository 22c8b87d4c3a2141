package cli

// terminalConfirmer prompts for destructive confirmations with a huh form
// run directly in the terminal. Used by one-shot commands; the TUI answers
// prompts through its own wizard flow instead.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(prompt string) bool {
	var confirmed bool
	form := wizardConfirm(prompt, &confirmed)
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

// recordedConfirmer replays answers collected up front, keyed by prompt.
// The TUI gathers both bulk-clear answers in one wizard and then hands them
// to the workflow, which still gates the destructive call on each one.
type recordedConfirmer struct {
	answers map[string]bool
}

func (c recordedConfirmer) Confirm(prompt string) bool {
	return c.answers[prompt]
}
