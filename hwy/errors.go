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

package hwy

import (
	"errors"
	"fmt"
	"log/slog"
)

// Preconditions that hwy operations panic on. The panic value is always a
// *ContractError wrapping one of these, so a recovered value can be
// matched with errors.Is.
var (
	// ErrIndexVectorTooNarrow: a vector used as an index source has fewer
	// lanes than the vector being scattered or gathered.
	ErrIndexVectorTooNarrow = errors.New("index vector has fewer lanes than the data vector")

	// ErrIndexArrayTooShort: a bounded index source holds fewer offsets
	// than the vector has lanes. Sources reporting length 0 are unbounded and
	// exempt, except Indexes, whose slice length is always checked.
	ErrIndexArrayTooShort = errors.New("index array has fewer entries than the data vector has lanes")

	// ErrIndexNotIntegral: a floating-point vector was used as an index source.
	ErrIndexNotIntegral = errors.New("index source must hold integral offsets")

	// ErrLaneCountMismatch: two masks or vectors of different lane counts
	// were combined lane-wise.
	ErrLaneCountMismatch = errors.New("lane counts differ")

	// ErrLaneOutOfRange: a lane index outside [0, N) was written.
	ErrLaneOutOfRange = errors.New("lane index out of range")

	// ErrEmptyMask: FirstOne was called on a mask with no lane set.
	// Only checked in hwydebug builds.
	ErrEmptyMask = errors.New("mask has no lane set")

	// ErrIndexOutOfRange: an enabled lane addressed memory outside the
	// slice. Only checked in hwydebug builds.
	ErrIndexOutOfRange = errors.New("offset outside the memory slice")
)

// ErrMaskText is returned by Mask.UnmarshalText for malformed input.
var ErrMaskText = errors.New("hwy: invalid mask text")

// ContractError describes a violated precondition of an hwy operation.
// These are programming errors in the caller, never transient conditions.
type ContractError struct {
	// Op is the operation that detected the violation, e.g. "Scatter".
	Op string

	// Err is the violated precondition, one of the Err* sentinels.
	Err error

	// Detail carries the concrete values involved.
	Detail string
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("hwy.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hwy.%s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// violate logs and panics with a *ContractError.
func violate(op string, err error, format string, args ...any) {
	ce := &ContractError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
	Logger().Error("hwy: contract violation",
		slog.String("op", op),
		slog.String("error", ce.Error()))
	panic(ce)
}
