package fancy

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	Ferrorf(&buf, "Error: Unknown report type '%s'\n", "average")
	Fprintf(&buf, Info, "%d records\n", 3)
	require.Equal(t, "Error: Unknown report type 'average'\n3 records\n", buf.String())
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(new(bytes.Buffer)))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.False(t, IsTerminal(f))
}
