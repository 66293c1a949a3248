package localstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger-go/internal/logger"
)

func newTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := New(t.TempDir(), logger.NewWithWriter(&buf))
	require.NoError(t, err)
	return s, &buf
}

func TestRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	in := []string{"12+3=15", "100/4=25"}
	require.NoError(t, s.Put(KeyCalculatorHistory, in))

	var out []string
	require.NoError(t, s.Get(KeyCalculatorHistory, &out))
	assert.Equal(t, in, out)
}

func TestGet_AbsentKeyLeavesValueEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	out := []string{}
	require.NoError(t, s.Get(KeyNotes, &out))
	assert.Empty(t, out)
}

func TestGet_MalformedJSONResetsToEmpty(t *testing.T) {
	s, buf := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, KeyNotes+".json"), []byte("{not json"), 0o644))

	var out []string
	require.NoError(t, s.Get(KeyNotes, &out))
	assert.Empty(t, out)
	assert.Contains(t, buf.String(), "malformed local state")

	// file is gone, next read behaves like an absent key
	_, err := os.Stat(filepath.Join(s.dir, KeyNotes+".json"))
	assert.True(t, os.IsNotExist(err))
}

func TestPut_Overwrites(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Put(KeyNotes, []string{"first"}))
	require.NoError(t, s.Put(KeyNotes, []string{"second"}))

	var out []string
	require.NoError(t, s.Get(KeyNotes, &out))
	assert.Equal(t, []string{"second"}, out)
}
