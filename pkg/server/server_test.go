package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordfind/pkg/corpus"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func newTestIndex() *suggest.Trie {
	index := suggest.New()
	for i := 0; i < 13; i++ {
		index.Insert("the")
	}
	index.Insert("there")
	index.Insert("then")
	return index
}

func encodeAll(t *testing.T, messages ...any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, m := range messages {
		require.NoError(t, enc.Encode(m))
	}
	return &buf
}

func TestServerSession(t *testing.T) {
	in := encodeAll(t,
		map[string]any{"id": "q1", "q": " TH "},
		map[string]any{"id": "q2", "action": "query", "q": "the"},
		map[string]any{"id": "q3", "q": "xyz"},
		map[string]any{"id": "s1", "action": "stats"},
		map[string]any{"action": "health", "id": "h1"},
		map[string]any{"id": "bad", "action": "delete"},
		"not a map",
		map[string]any{"q": "then"},
	)
	stats := corpus.Stats{Lines: 2, Tokens: 15, Distinct: 3, LongestWord: "there", LongestLen: 5}

	var out bytes.Buffer
	srv := NewServer(newTestIndex(), stats, in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)

	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)

	var partial QueryResponse
	require.NoError(t, dec.Decode(&partial))
	assert.Equal(t, "q1", partial.ID)
	assert.Equal(t, "th", partial.Match)
	assert.False(t, partial.IsWord)
	assert.Equal(t, 3, partial.Count)
	assert.Equal(t, []Suggestion{
		{Word: "the", Used: 13, Rank: 1},
		{Word: "then", Used: 1, Rank: 2},
		{Word: "there", Used: 1, Rank: 3},
	}, partial.Suggestions)

	var exact QueryResponse
	require.NoError(t, dec.Decode(&exact))
	assert.Equal(t, "q2", exact.ID)
	assert.True(t, exact.IsWord)
	assert.Equal(t, uint(13), exact.Used)
	assert.Empty(t, exact.Suggestions)

	var miss QueryResponse
	require.NoError(t, dec.Decode(&miss))
	assert.Equal(t, "", miss.Match)
	assert.Zero(t, miss.Count)

	var st StatsResponse
	require.NoError(t, dec.Decode(&st))
	assert.Equal(t, "s1", st.ID)
	assert.Equal(t, 3, st.Distinct)
	assert.Equal(t, 3, st.Words)
	assert.Equal(t, 6, st.Nodes)
	assert.Equal(t, "there", st.LongestWord)
	assert.Equal(t, suggest.DefaultSuggestions, st.Limit)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "h1", Status: "ok"}, health)

	var unknown ErrorResponse
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, "bad", unknown.ID)
	assert.Equal(t, 400, unknown.Code)
	assert.Contains(t, unknown.Error, "delete")

	var invalid ErrorResponse
	require.NoError(t, dec.Decode(&invalid))
	assert.Equal(t, 400, invalid.Code)

	var generated QueryResponse
	require.NoError(t, dec.Decode(&generated))
	assert.True(t, generated.IsWord)
	_, err := uuid.Parse(generated.ID)
	assert.NoError(t, err)

	assert.Zero(t, out.Len())
}

func TestServerEmptyInput(t *testing.T) {
	var out bytes.Buffer
	srv := NewServer(newTestIndex(), corpus.Stats{}, &bytes.Buffer{}, &out)
	require.NoError(t, srv.Start())

	var ready StatusResponse
	require.NoError(t, msgpack.NewDecoder(&out).Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
}

func TestServerTruncatedInput(t *testing.T) {
	full := encodeAll(t, map[string]any{"id": "abcdefgh"}).Bytes()
	truncated := bytes.NewReader(full[:len(full)-5])

	var out bytes.Buffer
	srv := NewServer(newTestIndex(), corpus.Stats{}, truncated, &out)
	assert.Error(t, srv.Start())
}

func TestNewSessionServer(t *testing.T) {
	session := &corpus.Session{Index: newTestIndex(), Stats: corpus.Stats{Distinct: 3}}
	in := encodeAll(t, map[string]any{"id": "s", "action": "stats"})

	var out bytes.Buffer
	require.NoError(t, NewSessionServer(session, in, &out).Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var st StatsResponse
	require.NoError(t, dec.Decode(&st))
	assert.Equal(t, 3, st.Distinct)
}
