// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(output string) error {
	switch output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected %s, %s or %s)", ErrInvalidOutput, output, outputText, outputJSON, outputYAML)
	}
}

// printValue renders [value] in the requested format. Text output is left to
// [text] so each command can choose what a human needs to see.
func printValue(w io.Writer, output string, value interface{}, text func(io.Writer)) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		// Round trip through JSON so raw API payloads keep their field names.
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := yaml.Unmarshal(b, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		text(w)
		return nil
	}
}

// rawString renders an API payload on a single line for text output.
func rawString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
