package payload

import (
	"protx.lol/lol"
)

var (
	errorf = lol.Main.Errorf
)
