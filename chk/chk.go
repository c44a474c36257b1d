// Package chk gives short names to the lol error checkers, for the
// `if err = f(); chk.E(err) {` idiom.
package chk

import (
	"protx.lol/lol"
)

var (
	F = lol.Main.Check.F
	E = lol.Main.Check.E
	W = lol.Main.Check.W
	I = lol.Main.Check.I
	D = lol.Main.Check.D
	T = lol.Main.Check.T
)
