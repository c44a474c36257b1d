package keyvalue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintEnv(t *testing.T) {
	cfg := struct {
		Zed   string   `env:"ZED"`
		Alpha bool     `env:"ALPHA"`
		List  []string `env:"LIST"`
		Skip  int
	}{"z", true, []string{"a", "b"}, 7}
	buf := new(bytes.Buffer)
	PrintEnv(cfg, buf)
	require.Equal(t, "#!/usr/bin/env bash\n"+
		"export ALPHA=true\n"+
		"export LIST=a,b\n"+
		"export ZED=z\n", buf.String())
}
