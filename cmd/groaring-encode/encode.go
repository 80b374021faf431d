// Copyright 2017 The Nakama Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doublemo/groaring/roaring"
)

var maxMemoryBytes int64

func newEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input> <output>",
		Short: "Read uint64 values and write a Pilosa Roaring stream",
		Long: `encode reads whitespace-separated decimal uint64 values from <input>
(use "-" for stdin) and writes the encoded Pilosa Roaring stream to <output>
(use "-" for stdout).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1])
		},
	}
	cmd.Flags().Int64Var(&maxMemoryBytes, "max-memory", 0,
		"if > 0, refuse to encode once bitmap-container allocations would exceed this many bytes")
	return cmd
}

func runEncode(inputPath, outputPath string) error {
	logger := newLogger(devMode, logFile)
	defer logger.Sync()

	in, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("groaring-encode: open input: %w", err)
	}
	defer in.Close()

	bm := roaring.NewBitmap(roaring.WithLogger(logger))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var count int
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return fmt.Errorf("groaring-encode: invalid value %q: %w", scanner.Text(), err)
		}
		bm.Add(v)
		count++

		if maxMemoryBytes > 0 && estimatedBitmapBytes(bm) > maxMemoryBytes {
			return fmt.Errorf("groaring-encode: after %d values: %w", count, roaring.ErrBitmapAlloc)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("groaring-encode: read input: %w", err)
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return fmt.Errorf("groaring-encode: open output: %w", err)
	}
	defer out.Close()

	n, err := bm.WriteTo(out)
	if err != nil {
		logger.Error("encode failed", zap.Error(err))
		return fmt.Errorf("groaring-encode: write: %w", err)
	}

	logger.Info("encoded bitmap",
		zap.Int("values", count),
		zap.Int64("bytes", n),
		zap.Int64("total encodes this process", roaring.EncodeCount()),
	)
	return nil
}

// estimatedBitmapBytes is a conservative upper bound on the memory this
// bitmap could still allocate: every materialized container is charged as
// if it will promote to the full 8 KiB bitmap representation, whether or
// not it has done so yet. It deliberately overestimates — the goal is to
// trip the --max-memory guard before an allocation happens, not to report
// the bitmap's exact current footprint.
func estimatedBitmapBytes(bm *roaring.Bitmap) int64 {
	const bitmapContainerBytes = 8 * roaring.BitmapWords
	return int64(bm.ContainerCount()) * bitmapContainerBytes
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
