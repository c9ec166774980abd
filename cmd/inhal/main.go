// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

// Command inhal compresses a file into the HAL format, either inserting it
// into an existing ROM at a given offset or writing a fresh packed file.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/devinacker/exhal"
	"github.com/devinacker/exhal/internal/applog"
)

var (
	fast    bool
	optimal bool
	newFile bool
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inhal [--fast] [--optimal] <infile> <romfile> <offset>",
		Short: "Compress a file into the HAL format",
		Long: "Compress a file into the HAL format.\n\n" +
			"To insert compressed data into a ROM:\n  inhal [--fast] infile romfile offset\n" +
			"To write compressed data to a new file:\n  inhal [--fast] -n infile outfile",
		Example: "  inhal --fast test.chr kirbybowl.sfc 0x70000\n" +
			"  inhal -n test.chr test-packed.bin\n" +
			"offset can be in either decimal or hex.",
		Args:         cobra.RangeArgs(2, 3),
		SilenceUsage: true,
		RunE:         runInhal,
	}
	cmd.Flags().BoolVar(&fast, "fast", false, "increase compression speed at the expense of size")
	cmd.Flags().BoolVar(&optimal, "optimal", false, "use the shortest-path packing strategy")
	cmd.Flags().BoolVarP(&newFile, "new", "n", false, "write a new packed file instead of inserting into a ROM")
	return cmd
}

func runInhal(cmd *cobra.Command, args []string) error {
	if fast {
		applog.Info("Fast compression enabled.")
	}

	var inPath, outPath string
	var offset int64

	if newFile {
		if len(args) != 2 {
			return errors.New("-n requires exactly infile and outfile")
		}
		inPath, outPath = args[0], args[1]
	} else {
		if len(args) != 3 {
			return errors.New("inserting into a ROM requires infile, romfile, and offset")
		}
		inPath = args[0]
		outPath = args[1]
		var err error
		offset, err = strconv.ParseInt(args[2], 0, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid offset %q", args[2])
		}
	}

	input, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inPath)
	}
	applog.Info("Uncompressed size: %d bytes", len(input))

	start := time.Now()
	packed, err := exhal.Encode(input, &exhal.EncodeOptions{Fast: fast, Optimal: optimal})
	elapsed := time.Since(start)
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	var endOffset int64
	if newFile {
		if err := os.WriteFile(outPath, packed, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", outPath)
		}
		endOffset = int64(len(packed)) - 1
	} else {
		out, err := os.OpenFile(outPath, os.O_RDWR, 0o644)
		if err != nil {
			return errors.Wrapf(err, "opening %s", outPath)
		}
		defer out.Close()
		if _, err := out.WriteAt(packed, offset); err != nil {
			return errors.Wrapf(err, "writing into %s", outPath)
		}
		endOffset = offset + int64(len(packed)) - 1
	}

	applog.Info("Compressed size: %d bytes", len(packed))
	fmt.Printf("Compression ratio: %4.2f%%\n", 100*float64(len(packed))/float64(len(input)))
	fmt.Printf("Compression time: %4.3f seconds\n\n", elapsed.Seconds())
	fmt.Printf("Inserted at 0x%06X - 0x%06X\n", offset, endOffset)

	return nil
}
