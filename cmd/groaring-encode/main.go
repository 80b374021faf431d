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

// Command groaring-encode is a thin CLI around the roaring package: it
// reads a list of uint64 values and emits a Pilosa Roaring stream, or
// inspects the envelope of an already-emitted one. The encoding logic
// itself lives entirely in the roaring package; this command is only the
// I/O wrapper the core's spec explicitly treats as an external collaborator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	devMode bool
	logFile string
)

func main() {
	root := &cobra.Command{
		Use:   "groaring-encode",
		Short: "Encode and inspect Pilosa Roaring bitmap streams",
	}
	root.PersistentFlags().BoolVar(&devMode, "dev", false, "use human-readable console logging instead of JSON")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file, rotated with lumberjack")

	root.AddCommand(newEncodeCommand())
	root.AddCommand(newInspectCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
