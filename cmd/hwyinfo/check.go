// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/spf13/cobra"
)

var errUnsupported = errors.New("CPU does not support the instruction set this binary was built for")

type checkResult struct {
	Level     string `json:"level"`
	Supported bool   `json:"supported"`
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Exit with status 1 if the CPU lacks the backend's instruction set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := checkResult{Level: hwy.CurrentName(), Supported: hwy.HardwareSupported()}
			var err error
			if opts.json {
				err = writeJSON(cmd.OutOrStdout(), res)
			} else if res.Supported {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: supported\n", res.Level)
			}
			if err != nil {
				return err
			}
			if !res.Supported {
				return fmt.Errorf("%s: %w", res.Level, errUnsupported)
			}
			return nil
		},
	}
}
