package lol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	defer Level.Store(Level.Load())
	NoTimeStamp.Store(true)
	defer NoTimeStamp.Store(false)
	buf := new(bytes.Buffer)
	l, c, e := New(buf)
	SetLoggers(Warn)
	l.I.F("hidden %d", 1)
	require.Zero(t, buf.Len())
	l.W.Ln("shown", 2)
	require.Contains(t, buf.String(), "shown 2")
	require.Contains(t, buf.String(), "log_test.go")
	buf.Reset()
	require.True(t, c.D(errors.New("quiet")))
	require.Zero(t, buf.Len())
	require.False(t, c.E(nil))
	err := e.E("field %s", "port")
	require.EqualError(t, err, "field port")
	require.True(t, strings.Contains(buf.String(), "ERR field port"))
	buf.Reset()
	SetLoggers(Off)
	_ = e.F("field %s", "mode")
	require.Zero(t, buf.Len())
}

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, Debug, GetLogLevel("debug"))
	require.Equal(t, Trace, GetLogLevel(" TRACE "))
	require.Equal(t, Info, GetLogLevel("nonsense"))
}
