// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// Preview returns a terminal rendition of one solution component of one
// frame, captioned with the frame time
func Preview(f *Frame, plotVar, width, height int) string {
	return asciigraph.Plot(f.Q[plotVar],
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(io.Sf("frame %d: q[%d] @ t = %g", f.Index, plotVar, f.T)),
	)
}
