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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}
	currentLevel = detectAMD64(cpu.X86.HasSSE2, cpu.X86.HasSSSE3)
}

// detectAMD64 maps CPU feature flags to a dispatch level. The grayscale
// kernel relies on PSHUFB/PHADDW/PMADDUBSW, so SSSE3 is the preferred level.
func detectAMD64(hasSSE2, hasSSSE3 bool) DispatchLevel {
	switch {
	case hasSSSE3:
		return DispatchSSSE3
	case hasSSE2:
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}
