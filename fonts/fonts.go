// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the outline fonts embedded in slate.
package fonts

import (
	"fmt"
	"slices"

	"cogentcore.org/slate/base/errors"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/goregular"
)

// Default is the name of the font used when none is configured.
const Default = "goregular"

// ErrUnknownFont is returned by [Open] for a name that is not embedded.
var ErrUnknownFont = errors.New("fonts: unknown font")

var embedded = map[string][]byte{
	"goregular":         goregular.TTF,
	"latin-modern":      lmsans10regular.TTF,
	"latin-modern-mono": lmmono10regular.TTF,
}

// Open returns the font file data for the embedded font with the given name.
// The empty name is the [Default] font.
func Open(name string) ([]byte, error) {
	if name == "" {
		name = Default
	}
	b, ok := embedded[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFont, name)
	}
	return b, nil
}

// Names returns the sorted names of the embedded fonts.
func Names() []string {
	nms := make([]string, 0, len(embedded))
	for nm := range embedded {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// Has returns whether there is an embedded font with the given name.
func Has(name string) bool {
	if name == "" {
		return true
	}
	_, ok := embedded[name]
	return ok
}
