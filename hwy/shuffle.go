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

// This file provides shuffle and horizontal operations.

// TableLookupBytes selects bytes of v by the indices in idx (PSHUFB).
// An index with its high bit set produces zero; otherwise its low four bits
// select the source lane.
func (v Uint8x16) TableLookupBytes(idx Uint8x16) Uint8x16 {
	var r Uint8x16
	for i, j := range idx {
		if j&0x80 != 0 {
			continue
		}
		r[i] = v[j&0x0F]
	}
	return r
}

// PairwiseAdd sums adjacent lane pairs (PHADDW). Lanes 0-3 of the result come
// from v and lanes 4-7 from w:
//
//	[v0+v1, v2+v3, v4+v5, v6+v7, w0+w1, w2+w3, w4+w5, w6+w7]
func (v Int16x8) PairwiseAdd(w Int16x8) Int16x8 {
	var r Int16x8
	for i := range 4 {
		r[i] = v[2*i] + v[2*i+1]
		r[4+i] = w[2*i] + w[2*i+1]
	}
	return r
}
