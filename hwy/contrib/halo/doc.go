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

// Package halo builds padded pixel buffers for fixed-offset 3x3 kernels.
//
// A Buffer stores an interleaved B,G,R,A image surrounded by a one-pixel
// ring (the halo) that replicates the nearest edge pixel. Every real pixel
// at padded coordinates (x, y), 1 <= x <= Width and 1 <= y <= Height, can
// then read its eight neighbours at constant byte offsets without bounds
// checks:
//
//	NW: -stride*4-4   N: -stride*4   NE: -stride*4+4
//	 W: -4            C: 0            E: +4
//	SW: +stride*4-4   S: +stride*4   SE: +stride*4+4
//
// # Usage Example
//
//	cfg := halo.Config{Width: 403, Height: 403}
//	buf, err := halo.FromPixels(cfg, raw)
//	if err != nil {
//	    return err
//	}
//	// ... run kernels reading buf ...
//	out := buf.Strip()
//
// # Replication Order
//
// Columns are replicated before rows, so the four corner cells copy the
// already-replicated side values of rows 1 and Height.
package halo
