// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_preview01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("preview01. terminal frames")

	f, err := ReadFrame("data", 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	graph := Preview(f, 0, 60, 12)
	io.Pf("%s\n\n", graph)
	if graph == "" {
		tst.Errorf("preview must not be empty")
		return
	}
	if !strings.Contains(graph, "frame 1: q[0] @ t = 0.25") {
		tst.Errorf("preview must be captioned with the frame time")
		return
	}
	if n := len(strings.Split(graph, "\n")); n < 12 {
		tst.Errorf("preview with height 12 must span at least 12 lines. %d is incorrect", n)
		return
	}
}
