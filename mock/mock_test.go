package mock_test

import (
	"testing"

	"bfbb/gamevar"
	"bfbb/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUnseededFails(t *testing.T) {
	b := mock.New()

	_, err := b.ReadBytes(0x80000000, 4)
	require.ErrorIs(t, err, mock.ErrUnseededAddress)
	require.ErrorIs(t, err, gamevar.ErrBackendIO)
}

func TestReadPartiallySeededFails(t *testing.T) {
	b := mock.New()
	b.Seed(0x80000000, 0xAA, 0xBB, 0xCC)

	// The fourth byte of the range is missing.
	_, err := b.ReadBytes(0x80000000, 4)
	require.ErrorIs(t, err, mock.ErrUnseededAddress)

	raw, err := b.ReadBytes(0x80000000, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, raw)
}

func TestWriteSeedsMemory(t *testing.T) {
	b := mock.New()

	require.NoError(t, b.WriteBytes(0x80001000, []byte{0x01, 0x02}))
	raw, err := b.ReadBytes(0x80001000, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, raw)
}

func TestSeedU32IsBigEndian(t *testing.T) {
	b := mock.New()
	b.SeedU32(0x80002000, 0x80D14F00)

	raw, err := b.ReadBytes(0x80002000, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0xD1, 0x4F, 0x00}, raw)
}

func TestDetachAndRehook(t *testing.T) {
	b := mock.New()
	b.Seed(0x80003000, 0x42)
	require.True(t, b.IsHooked())

	b.Detach()
	require.False(t, b.IsHooked())

	_, err := b.ReadBytes(0x80003000, 1)
	require.ErrorIs(t, err, gamevar.ErrUnhooked)
	require.ErrorIs(t, b.WriteBytes(0x80003000, []byte{0x00}), gamevar.ErrUnhooked)

	b.Rehook()
	require.True(t, b.IsHooked())
	raw, err := b.ReadBytes(0x80003000, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, raw)
}

func TestPeekIgnoresHookState(t *testing.T) {
	b := mock.New()
	b.Seed(0x80004000, 0x10, 0x20)
	b.Detach()

	raw, ok := b.Peek(0x80004000, 2)
	require.True(t, ok)
	assert.Equal(t, []byte{0x10, 0x20}, raw)

	_, ok = b.Peek(0x80004000, 3)
	assert.False(t, ok)
}

func TestDumpMarksUnseededBytes(t *testing.T) {
	b := mock.New()
	b.Seed(0x80005000, 0xDE, 0xAD)
	b.Seed(0x80005004, 0xBE, 0xEF)

	dump := b.Dump(0x80005000, 8)
	assert.Contains(t, dump, "DE AD")
	assert.Contains(t, dump, "BE EF")
	assert.Contains(t, dump, "..")
	assert.Contains(t, dump, "80005000")
}
