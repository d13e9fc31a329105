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

// Command hwyinfo reports the lane widths of the hwy backend it was built
// for and whether the running CPU supports it.
//
// Usage:
//
//	hwyinfo lanes                   # lane count of every element type
//	hwyinfo lanes --types float32,int16 --json
//	hwyinfo check                   # exit status 1 if the CPU lacks the backend
//	go run -tags hwy_avx2 ./cmd/hwyinfo lanes
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
