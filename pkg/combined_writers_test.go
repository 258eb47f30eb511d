package pkg

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCombinedWriter_Write(t *testing.T) {
	stdout := &strings.Builder{}
	stdout.WriteString("service started\n")
	file := &strings.Builder{}

	cw := NewCombinedWriter(stdout, file)
	require.Len(t, cw.Writers, 2)

	line1 := "level=info msg=\"report served\"\n"
	line2 := "level=warn msg=\"cache miss\"\n"
	n, err := cw.Write([]byte(line1))
	require.NoError(t, err)
	assert.Equal(t, len(line1), n)
	n, err = cw.Write([]byte(line2))
	require.NoError(t, err)
	assert.Equal(t, len(line2), n)

	assert.Equal(t, "service started\n"+line1+line2, stdout.String())
	assert.Equal(t, line1+line2, file.String())
}

func TestCombinedWriter_Write_WithError(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(failingWriter{}, sb)

	line := "level=error msg=\"db gone\"\n"
	n, err := cw.Write([]byte(line))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Zero(t, n)

	// the healthy writer still got the line
	assert.Equal(t, line, sb.String())
}

func TestCombinedWriter_Write_ShortWrite(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(sb, shortWriter{})

	n, err := cw.Write([]byte("hello"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 2, n)
	assert.Equal(t, "hello", sb.String())

	cw = NewCombinedWriter(shortWriter{}, failingWriter{})
	n, err = cw.Write([]byte("hello"))
	assert.Zero(t, n)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestCombinedWriter_NoWriters(t *testing.T) {
	n, err := NewCombinedWriter().Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return min(2, len(p)), nil
}
