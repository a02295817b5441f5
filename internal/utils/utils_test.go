package utils

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first, second)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()

	require.NotNil(t, a.Client)
	assert.NotSame(t, a.Client, b.Client)
}

func TestFingerprint(t *testing.T) {
	const content = "transaction_id,sender_id,receiver_id,amount,timestamp\n"

	fp := NewFingerprint(strings.NewReader(content))
	data, err := io.ReadAll(fp)
	require.NoError(t, err)

	want := blake2b.Sum256([]byte(content))
	assert.Equal(t, content, string(data))
	assert.Equal(t, hex.EncodeToString(want[:]), fp.Sum())
	assert.Equal(t, int64(len(content)), fp.Size())
}

func TestFingerprint_Empty(t *testing.T) {
	fp := NewFingerprint(strings.NewReader(""))
	_, err := io.ReadAll(fp)
	require.NoError(t, err)

	want := blake2b.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(want[:]), fp.Sum())
	assert.Zero(t, fp.Size())
}
