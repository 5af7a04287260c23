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

package convolve

import (
	"fmt"

	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

// MaxAbsDiff returns the largest per-channel absolute difference between
// two results of the same shape.
func MaxAbsDiff(a, b Result) (int, error) {
	if a.Width != b.Width || a.Height != b.Height || a.Halo != b.Halo || len(a.Pix) != len(b.Pix) {
		return 0, fmt.Errorf("%w: %dx%d (%d bytes) vs %dx%d (%d bytes)",
			halo.ErrShapeMismatch, a.Width, a.Height, len(a.Pix), b.Width, b.Height, len(b.Pix))
	}
	worst := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst, nil
}
