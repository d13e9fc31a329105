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

//go:build hwy_scalar || (!amd64 && !arm64)

package hwy

// Scalar fallback. Selected with the hwy_scalar build tag, or on
// architectures without a vector backend. Every type has one lane, which
// makes this the reference behavior the wider backends must agree with.

const (
	currentLevel = DispatchScalar

	// registerBytes holds one lane of the widest element type.
	registerBytes = 8
)

func laneCount(size uintptr, float bool) int {
	return 1
}

func hardwareSupported() bool {
	return true
}
