package config

import (
	"protx.lol/lol"
)

var (
	chk = lol.Main.Check
)
