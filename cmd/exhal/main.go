// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

// Command exhal decompresses a HAL-format block embedded in a ROM (or any
// binary file) at a given offset and writes the decoded bytes to a new
// file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devinacker/exhal"
	"github.com/devinacker/exhal/internal/applog"
)

var showStats bool

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exhal <romfile> <offset> <outfile>",
		Short: "Decompress a HAL-format block from a file",
		Example: "  exhal kirbybowl.sfc 0x70000 test.bin\n" +
			"offset can be in either decimal or hex.",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE:         runExhal,
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "print per-method opcode usage counts")
	return cmd
}

func runExhal(cmd *cobra.Command, args []string) error {
	romPath, offsetArg, outPath := args[0], args[1], args[2]

	offset, err := strconv.ParseInt(offsetArg, 0, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid offset %q", offsetArg)
	}

	rom, err := os.Open(romPath)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", romPath)
	}
	defer rom.Close()

	info, err := rom.Stat()
	if err != nil {
		return errors.Wrap(err, "stat romfile")
	}
	if offset < 0 || offset >= info.Size() {
		return errors.Errorf("offset 0x%X is outside %s (size %d)", offset, romPath, info.Size())
	}

	readLen := min(info.Size()-offset, int64(exhal.MaxBlockSize))
	buf := make([]byte, readLen)
	if _, err := rom.ReadAt(buf, offset); err != nil {
		return errors.Wrap(err, "reading romfile")
	}

	decoded, stats, err := exhal.Decode(buf)
	if err != nil {
		return errors.Wrap(err, "decode")
	}

	if err := os.WriteFile(outPath, decoded, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}

	applog.Info("Uncompressed size: %d bytes", len(decoded))
	if showStats {
		printStats(stats)
	}
	return nil
}

func printStats(stats exhal.DecodeStats) {
	names := [...]string{"literal", "rle_8", "rle_16", "rle_seq", "lz_norm", "lz_rot", "lz_rev"}
	for i, n := range stats.MethodUse {
		if n > 0 {
			fmt.Printf("  %-8s %d\n", names[i], n)
		}
	}
	fmt.Printf("  consumed %d compressed bytes\n", stats.BytesConsumed)
}
