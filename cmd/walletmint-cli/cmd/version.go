// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/utils"
)

type versionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func newVersionCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp := &versionResponse{Name: consts.Name, Version: consts.Version}
			return printValue(cmd.OutOrStdout(), h.Output(), resp, func(w io.Writer) {
				utils.Fprintf(w, "%s {{cyan}}%s{{/}}\n", resp.Name, resp.Version)
			})
		},
	}
}
