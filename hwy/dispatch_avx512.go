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

//go:build amd64 && !hwy_scalar && hwy_avx512

package hwy

import "golang.org/x/sys/cpu"

const (
	currentLevel  = DispatchAVX512
	registerBytes = 64
)

func laneCount(size uintptr, float bool) int {
	return registerBytes / int(size)
}

// hardwareSupported requires AVX512BW on top of the foundation set,
// since 8- and 16-bit lanes need it for masked moves.
func hardwareSupported() bool {
	return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
