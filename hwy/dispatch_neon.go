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

//go:build arm64 && !hwy_scalar

package hwy

import "golang.org/x/sys/cpu"

// ARM64 (AArch64) always has NEON (ASIMD); it is part of the ARMv8-A base
// architecture. The backend keeps float64 at one lane: NEON double
// arithmetic is no faster than scalar for the operations exposed here.

const (
	currentLevel  = DispatchNEON
	registerBytes = 16 // NEON is 128-bit (16 bytes)
)

func laneCount(size uintptr, float bool) int {
	if float && size == 8 {
		return 1
	}
	return registerBytes / int(size)
}

func hardwareSupported() bool {
	return cpu.ARM64.HasASIMD
}
