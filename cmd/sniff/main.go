// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

// Command sniff scans every byte offset of a file for data that decodes as
// a plausible HAL-compressed block, reporting candidates whose decoded
// length is both larger than the compressed span consumed and at least
// 1024 bytes.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devinacker/exhal"
)

const minReportSize = 1024

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "sniff <romfile>",
		Short:        "Scan a file for HAL-compressed blocks",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runSniff,
	}
}

func runSniff(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", path)
	}

	for i := range data {
		window := data[i:min(i+exhal.MaxBlockSize, len(data))]
		decoded, stats, err := exhal.Decode(window)
		if err != nil {
			continue
		}
		if len(decoded) > stats.BytesConsumed && len(decoded) >= minReportSize {
			fmt.Printf("%06x: %d -> %d bytes\n", i, stats.BytesConsumed, len(decoded))
		}
	}
	return nil
}
