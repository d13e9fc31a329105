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
	"fmt"
	"strings"
	"text/tabwriter"
	"unsafe"

	"github.com/ajroetker/go-lanes/hwy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// laneRow describes one element type under the active backend.
type laneRow struct {
	Type     string `json:"type"`
	Size     int    `json:"size"`
	Lanes    int    `json:"lanes"`
	FullMask string `json:"full_mask"`
}

type lanesReport struct {
	Level     string    `json:"level"`
	Width     int       `json:"width"`
	Supported bool      `json:"supported"`
	Types     []laneRow `json:"types"`
}

func rowFor[T hwy.Lanes](name string) func() laneRow {
	return func() laneRow {
		var zero T
		return laneRow{
			Type:     name,
			Size:     int(unsafe.Sizeof(zero)),
			Lanes:    hwy.MaxLanes[T](),
			FullMask: hwy.FullMask[T]().String(),
		}
	}
}

var allRows = []func() laneRow{
	rowFor[int8]("int8"),
	rowFor[uint8]("uint8"),
	rowFor[int16]("int16"),
	rowFor[uint16]("uint16"),
	rowFor[int32]("int32"),
	rowFor[uint32]("uint32"),
	rowFor[float32]("float32"),
	rowFor[int64]("int64"),
	rowFor[uint64]("uint64"),
	rowFor[float64]("float64"),
}

// buildLanesReport lists the requested element types, or all of them
// when types is empty.
func buildLanesReport(types []string) (lanesReport, error) {
	rows := lo.Map(allRows, func(f func() laneRow, _ int) laneRow { return f() })
	if len(types) > 0 {
		known := lo.Map(rows, func(r laneRow, _ int) string { return r.Type })
		if unknown := lo.Without(types, known...); len(unknown) > 0 {
			return lanesReport{}, fmt.Errorf("unknown element types %s (known: %s)",
				strings.Join(unknown, ","), strings.Join(known, ","))
		}
		rows = lo.Filter(rows, func(r laneRow, _ int) bool { return lo.Contains(types, r.Type) })
	}
	return lanesReport{
		Level:     hwy.CurrentName(),
		Width:     hwy.CurrentWidth(),
		Supported: hwy.HardwareSupported(),
		Types:     rows,
	}, nil
}

func newLanesCmd(opts *options) *cobra.Command {
	var types []string
	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Print the lane count of each element type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := buildLanesReport(types)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "backend %s, %d-byte registers\n\n", report.Level, report.Width)
			fmt.Fprintln(w, "TYPE\tSIZE\tLANES\tFULL MASK")
			for _, r := range report.Types {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.Type, r.Size, r.Lanes, r.FullMask)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&types, "types", nil, "comma-separated element types to list (default all)")
	return cmd
}
