// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/walletmint/walletmint/crossmint"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

var (
	ErrInputEmpty    = errors.New("input is empty")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Prompter reads answers from In and renders the prompt on Out. Nil fields
// fall back to the terminal.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

func (p Prompter) Continue() (bool, error) {
	return p.Bool("continue")
}

func (p Prompter) Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label:    label + " (y/n)",
		Validate: validateYesNo,
		Stdin:    p.In,
		Stdout:   p.Out,
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(rawContinue)) == "y", nil
}

// ConfirmMint shows what is about to be minted and asks before going ahead.
func (p Prompter) ConfirmMint(recipient string, metadata crossmint.Metadata) (bool, error) {
	var w io.Writer = formatter.ColorableStdOut
	if p.Out != nil {
		w = p.Out
	}
	fmt.Fprint(w, formatter.F(
		"{{yellow}}recipient:{{/}} %s\n{{yellow}}name:{{/}} %s\n{{yellow}}image:{{/}} %s\n{{yellow}}description:{{/}} %s\n",
		recipient,
		metadata.Name,
		metadata.Image,
		metadata.Description,
	))
	ok, err := p.Continue()
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprint(w, formatter.F("{{red}}exiting...{{/}}\n"))
	}
	return ok, nil
}

func validateYesNo(input string) error {
	if len(input) == 0 {
		return ErrInputEmpty
	}
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "y" || lower == "n" {
		return nil
	}
	return ErrInvalidChoice
}
