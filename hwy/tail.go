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

// Pixel kernels process a fixed number of pixels per vector call (their lane
// stride). These helpers split a row of pixels into the part covered by full
// vector calls and the remainder that falls back to per-pixel code.

// FullSpan returns the largest multiple of stride that is <= size.
func FullSpan(size, stride int) int {
	if stride <= 0 || size <= 0 {
		return 0
	}
	return size - size%stride
}

// IsAligned returns true if size is a multiple of stride.
func IsAligned(size, stride int) bool {
	if stride <= 0 {
		return true
	}
	return size%stride == 0
}

// ProcessWithTail calls fullFn(offset) for every full group of stride
// elements and tailFn(offset, count) once for the remainder, if any.
//
// Example:
//
//	hwy.ProcessWithTail(width, 4,
//	    func(offset int) { grayscale4(row[offset*4:]) },
//	    func(offset, count int) {
//	        for i := range count {
//	            grayscale1(row[(offset+i)*4:])
//	        }
//	    },
//	)
func ProcessWithTail(size, stride int, fullFn func(offset int), tailFn func(offset, count int)) {
	full := FullSpan(size, stride)
	for i := 0; i < full; i += stride {
		fullFn(i)
	}
	if remaining := size - full; remaining > 0 {
		tailFn(full, remaining)
	}
}
