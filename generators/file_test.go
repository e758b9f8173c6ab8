package generators

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFile_ParsesEdgesAndInfersN(t *testing.T) {
	input := "# comment\n0 1\n1 2  \n\n2 0\n"
	n, edges, err := FromFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, len(edges))
	require.Equal(t, 0, edges[0].Tail)
	require.Equal(t, 1, edges[0].Head)
}

func TestFromFile_RejectsMalformedLine(t *testing.T) {
	_, _, err := FromFile(strings.NewReader("0\n"))
	require.True(t, errors.Is(err, ErrFileFormat))
}

func TestFromFile_RejectsNonNumeric(t *testing.T) {
	_, _, err := FromFile(strings.NewReader("a b\n"))
	require.True(t, errors.Is(err, ErrFileFormat))
}

func TestFromFile_EmptyInputHasNoNodes(t *testing.T) {
	n, edges, err := FromFile(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Empty(t, edges)
}
