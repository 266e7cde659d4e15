package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_CustomPaths(t *testing.T) {
	env, err := newEnvelope("data.items", "detail")
	require.NoError(t, err)

	items, err := env.items([]byte(`{"data":{"items":[{"id":1},{"id":2}]}}`))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "nope", env.message([]byte(`{"detail":"nope","message":"ignored"}`)))
}

func TestEnvelope_MessageEdgeCases(t *testing.T) {
	env, err := newEnvelope("", "")
	require.NoError(t, err)

	assert.Empty(t, env.message(nil))
	assert.Empty(t, env.message([]byte(`not json`)))
	assert.Empty(t, env.message([]byte(`{"message":{"nested":true}}`)))
	assert.Equal(t, "a; b", env.message([]byte(`{"message":["a"," ","b"]}`)))
	assert.Equal(t, "Bad Request", env.message([]byte(`{"error":"Bad Request"}`)))
}

func TestEnvelope_LargeIDsSurvive(t *testing.T) {
	env, err := newEnvelope("rows", "")
	require.NoError(t, err)

	items, err := env.items([]byte(`{"count":1,"rows":[{"id":9007199254740993,"salary":1500.5}]}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"id":9007199254740993,"salary":1500.5}`, string(items[0]))
	assert.Contains(t, string(items[0]), "9007199254740993")
}
