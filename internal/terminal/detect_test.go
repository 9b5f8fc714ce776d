package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeFile struct {
	fd uintptr
}

func (f fakeFile) Fd() uintptr { return f.fd }

func TestIsTerminalNonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}

func TestIsTerminalUsesFd(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	var got int
	isTerminal = func(fd int) bool {
		got = fd
		return fd == 7
	}

	assert.True(t, IsTerminal(fakeFile{fd: 7}))
	assert.Equal(t, 7, got)
	assert.False(t, IsTerminal(fakeFile{fd: 3}))
}
