// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// DefaultItemStyle returns the style of a computed-solution curve
func DefaultItemStyle() plt.A {
	return plt.A{C: "b", M: "o", Ls: "-"}
}

// DefaultTrueStyle returns the style of the reference-solution curve
func DefaultTrueStyle() plt.A {
	return plt.A{C: "r", Ls: "-"}
}

// GetTexLabel returns the formatted label of a variable key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time", "t":
		l += "t"
	case "x":
		l += "x"
	case "q":
		l += "q"
	case "pressure":
		l += "p"
	case "velocity":
		l += "u"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
