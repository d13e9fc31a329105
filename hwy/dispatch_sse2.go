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

//go:build amd64 && !hwy_scalar && !hwy_avx2 && !hwy_avx512

package hwy

import "golang.org/x/sys/cpu"

// SSE2 is part of the x86-64 baseline and the default amd64 backend.
// Build with hwy_avx2 or hwy_avx512 for wider registers.

const (
	currentLevel  = DispatchSSE2
	registerBytes = 16
)

func laneCount(size uintptr, float bool) int {
	return registerBytes / int(size)
}

func hardwareSupported() bool {
	return cpu.X86.HasSSE2
}
