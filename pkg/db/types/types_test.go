package dbtypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ScanAndValue(t *testing.T) {
	t.Run("round trips an ordered list", func(t *testing.T) {
		in := StringList{"espresso", "milk", "vanilla"}
		v, err := in.Value()
		require.NoError(t, err)

		var out StringList
		require.NoError(t, out.Scan(v))
		assert.Equal(t, in, out)
	})

	t.Run("nil column scans to empty list", func(t *testing.T) {
		var out StringList
		require.NoError(t, out.Scan(nil))
		assert.Equal(t, StringList{}, out)
	})

	t.Run("json null scans to empty list", func(t *testing.T) {
		var out StringList
		require.NoError(t, out.Scan("null"))
		assert.Equal(t, StringList{}, out)
	})

	t.Run("nil list stores an empty array", func(t *testing.T) {
		var in StringList
		v, err := in.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("rejects non list text", func(t *testing.T) {
		var out StringList
		assert.Error(t, out.Scan(`{"not":"a list"}`))
	})

	t.Run("marshals nil as empty array", func(t *testing.T) {
		var in StringList
		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})
}

func TestJSONMap_ScanAndValue(t *testing.T) {
	t.Run("round trips an object", func(t *testing.T) {
		in := JSONMap{"calories": float64(240), "sugar": "12g"}
		v, err := in.Value()
		require.NoError(t, err)

		var out JSONMap
		require.NoError(t, out.Scan(v))
		assert.Equal(t, in, out)
	})

	t.Run("nil map stores sql null", func(t *testing.T) {
		var in JSONMap
		v, err := in.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("null column scans to nil", func(t *testing.T) {
		out := JSONMap{"stale": true}
		require.NoError(t, out.Scan(nil))
		assert.Nil(t, out)
	})

	t.Run("rejects non object text", func(t *testing.T) {
		var out JSONMap
		assert.Error(t, out.Scan(`["a","b"]`))
	})
}
