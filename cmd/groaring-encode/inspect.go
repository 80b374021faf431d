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
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doublemo/groaring/roaring"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the header, meta, and offset regions of an emitted stream",
		Long: `inspect decodes only the envelope of a Pilosa Roaring stream — the
cookie, container count, meta records, and offset records. It never decodes
a container's payload bytes: this package is write-only and has no reader.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("groaring-encode: read %s: %w", path, err)
	}
	if len(data) < roaring.HeaderBaseSize {
		return fmt.Errorf("groaring-encode: %s is %d bytes, too short for a header", path, len(data))
	}

	cookie := binary.LittleEndian.Uint32(data[0:4])
	count := binary.LittleEndian.Uint32(data[4:8])
	if cookie != roaring.Cookie {
		return fmt.Errorf("groaring-encode: %s has cookie %d, expected %d", path, cookie, roaring.Cookie)
	}

	const metaRecordSize = 12
	const offsetRecordSize = 4
	metaEnd := roaring.HeaderBaseSize + int(count)*metaRecordSize
	offsetEnd := metaEnd + int(count)*offsetRecordSize
	if len(data) < offsetEnd {
		return fmt.Errorf("groaring-encode: %s is truncated: need %d bytes for %d containers, have %d", path, offsetEnd, count, len(data))
	}

	fmt.Printf("cookie=%d containers=%d\n", cookie, count)
	fmt.Printf("%-20s %-8s %-12s %-10s\n", "key", "type", "cardinality", "offset")
	for i := uint32(0); i < count; i++ {
		metaOff := roaring.HeaderBaseSize + int(i)*metaRecordSize
		key := binary.LittleEndian.Uint64(data[metaOff : metaOff+8])
		typ := binary.LittleEndian.Uint16(data[metaOff+8 : metaOff+10])
		cardMinus1 := binary.LittleEndian.Uint16(data[metaOff+10 : metaOff+12])

		offOff := metaEnd + int(i)*offsetRecordSize
		offset := binary.LittleEndian.Uint32(data[offOff : offOff+4])

		fmt.Printf("%-20d %-8s %-12d %-10d\n", key, containerTypeName(typ), int(cardMinus1)+1, offset)
	}
	return nil
}

func containerTypeName(typ uint16) string {
	switch typ {
	case 1:
		return "array"
	case 2:
		return "bitmap"
	case 3:
		return "rle"
	default:
		return "invalid"
	}
}
