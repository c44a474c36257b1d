package env

import (
	"protx.lol/lol"
)

var (
	chk = lol.Main.Check
)
