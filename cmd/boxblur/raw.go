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


package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ajroetker/go-boxblur/hwy/contrib/halo"
)

var errRawSize = errors.New("raw file size does not match image geometry")

// readRaw reads a headerless 4-byte-per-pixel file holding exactly the
// pixels of cfg.
func readRaw(name string, cfg halo.Config) ([]uint8, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	switch want := cfg.SourceLen(); {
	case len(data) < want:
		return nil, fmt.Errorf("%s: %w: %d bytes, want %d for %v", name, halo.ErrBufferTooSmall, len(data), want, cfg)
	case len(data) > want:
		return nil, fmt.Errorf("%s: %w: %d bytes, want %d for %v", name, errRawSize, len(data), want, cfg)
	}
	return data, nil
}

func writeRaw(name string, pix []uint8) error {
	return os.WriteFile(name, pix, 0o644)
}
