package csv

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

type Msg struct {
	Sum, Name string
}

func (m Msg) Record() []string {
	return []string{m.Sum, m.Name}
}

type HeaderedMsg struct {
	Msg
}

func (m HeaderedMsg) Header() []string {
	return []string{"crc", "input"}
}

type NonRecorder struct{}

func TestRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := NewEncoder(buf)

	require.NoError(t, enc.Encode(Msg{"0xCBF43926", "a.bin"}))
	assert.Equal(t, "0xCBF43926,a.bin\n", buf.String())
}

func TestHeaderWrittenOnce(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := NewEncoder(buf)

	require.NoError(t, enc.Encode(HeaderedMsg{Msg{"0x31C3", "a.bin"}}))
	require.NoError(t, enc.Encode(HeaderedMsg{Msg{"0x906E", "b.bin"}}))

	assert.Equal(t, "crc,input\n0x31C3,a.bin\n0x906E,b.bin\n", buf.String())
}

func TestRecorderNil(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})

	require.Error(t, enc.Encode(nil))
}

func TestNonRecorder(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{})

	err := enc.Encode(NonRecorder{})

	var runtimeErr runtime.Error
	assert.True(t, xerrors.As(err, &runtimeErr))
}
