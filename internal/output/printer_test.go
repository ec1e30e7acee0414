package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEchoRoutesByRole(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, ColorNever, false)

	p.Echo(StdoutRole, "out line")
	p.Echo(StderrRole, "err line")

	require.Equal(t, "out line\n", stdout.String())
	require.Equal(t, "err line\n", stderr.String())
}

func TestEchoQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, ColorNever, true)

	p.Echo(StdoutRole, "hidden")
	p.Notice("also hidden")

	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())
}

func TestEchoSkipsEmptyOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, ColorNever, false)

	p.Echo(StdoutRole, "")
	require.Empty(t, stdout.String())
}

func TestEchoColorAlways(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, ColorAlways, false)

	p.Echo(StderrRole, "boom")
	require.Contains(t, stderr.String(), "boom")
}

func TestParseColorMode(t *testing.T) {
	require.Equal(t, ColorAlways, ParseColorMode("always"))
	require.Equal(t, ColorNever, ParseColorMode("never"))
	require.Equal(t, ColorAuto, ParseColorMode("auto"))
	require.Equal(t, ColorAuto, ParseColorMode("bogus"))
}

func TestNotice(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, ColorNever, false)

	p.Notice("reset %s", "skipped")
	require.Equal(t, "reset skipped\n", stdout.String())
}
