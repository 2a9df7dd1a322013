// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openStore(t, t.TempDir())

	first := Entry{
		Title:        "Acme Portal",
		Source:       "portal.txt",
		Output:       "portal.pdf",
		Matched:      14,
		Placeholders: 2,
		Bytes:        20480,
		GeneratedAt:  time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(first))
	require.NoError(t, s.Record(Entry{Title: "Billing Revamp", Matched: 16}))

	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Billing Revamp", entries[0].Title)
	assert.Equal(t, "Acme Portal", entries[1].Title)

	got := entries[1]
	assert.Equal(t, first.Source, got.Source)
	assert.Equal(t, first.Output, got.Output)
	assert.Equal(t, first.Matched, got.Matched)
	assert.Equal(t, first.Placeholders, got.Placeholders)
	assert.Equal(t, first.Bytes, got.Bytes)
	assert.True(t, got.GeneratedAt.Equal(first.GeneratedAt))
}

func TestList_LimitAndDefault(t *testing.T) {
	s := openStore(t, t.TempDir())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(Entry{Title: "doc"}))
	}

	entries, err := s.List(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = s.List(0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestZeroTimestampIsStamped(t *testing.T) {
	s := openStore(t, t.TempDir())

	require.NoError(t, s.Record(Entry{Title: "untimed"}))

	entries, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].GeneratedAt.IsZero())
}

func TestReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Record(Entry{Title: "persisted"}))
	require.NoError(t, s.Close())

	s = openStore(t, dir)
	entries, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Title)
}
