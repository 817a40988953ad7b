package fossil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	require.True(t, strings.Contains(out, "Version:"))
	require.True(t, strings.Contains(out, Version))
	require.True(t, strings.Contains(out, "OS/Arch:"))
}
