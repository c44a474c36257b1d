package hash256

import (
	"protx.lol/lol"
)

var (
	chk, errorf = lol.Main.Check, lol.Main.Errorf
)
