package want_test

import (
	"encoding/json"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/ib-77/want/pkg/want"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Option_Some(t *testing.T) {
	t.Parallel()

	o := want.Some("hello")

	assert.True(t, o.IsWanted())
	assert.Equal(t, "hello", o.Raw())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	// presence, not contents, decides the outcome
	assert.True(t, want.Some(0).IsWanted())
	assert.True(t, want.Some("").IsWanted())
}

func Test_Option_None(t *testing.T) {
	t.Parallel()

	o := want.None[int]()

	assert.False(t, o.IsWanted())
	assert.Equal(t, 0, o.Raw())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	var zero want.Option[int]
	assert.False(t, zero.IsWanted(), "the zero Option is None")
}

func Test_Option_Maybe(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	a := want.Maybe(m["a"], true)
	assert.True(t, a.IsWanted())
	assert.Equal(t, 1, a.Raw())

	b := want.Maybe(m["b"], false)
	assert.False(t, b.IsWanted())
}

func Test_Option_GetOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, want.Some(3).GetOr(9))
	assert.Equal(t, 9, want.None[int]().GetOr(9))
}

func Test_Option_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", want.Some(7).String())
	assert.Equal(t, "none[int]", want.None[int]().String())
}

func Test_Option_JSON(t *testing.T) {
	t.Parallel()

	type profile struct {
		Name string           `json:"name"`
		Age  want.Option[int] `json:"age"`
	}

	t.Run("jsonv2 round trip", func(t *testing.T) {
		in := profile{Name: "ann", Age: want.Some(30)}

		b, err := jsonv2.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"ann","age":30}`, string(b))

		var out profile
		require.NoError(t, jsonv2.Unmarshal(b, &out))
		assert.Equal(t, in, out)
	})

	t.Run("none is null", func(t *testing.T) {
		in := profile{Name: "bob"}

		b, err := jsonv2.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"bob","age":null}`, string(b))

		var out profile
		require.NoError(t, jsonv2.Unmarshal(b, &out))
		assert.False(t, out.Age.IsWanted())
	})

	t.Run("v1 bridge", func(t *testing.T) {
		b, err := json.Marshal(want.Some("x"))
		require.NoError(t, err)
		assert.Equal(t, `"x"`, string(b))

		var o want.Option[string]
		require.NoError(t, json.Unmarshal([]byte(`"y"`), &o))
		assert.Equal(t, "y", o.GetOr(""))

		require.NoError(t, json.Unmarshal([]byte(`null`), &o))
		assert.False(t, o.IsWanted())
	})
}
