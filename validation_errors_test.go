package validkit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func TestErrorsOrdering(t *testing.T) {
	e := validkit.NewErrors()
	e.Add(validkit.Attr("email"), "first")
	e.Add(validkit.Attr("name"), "second")
	e.Add(validkit.Attr("email"), "third")

	assert.Equal(t, []string{"first", "second", "third"}, e.All())
	assert.Equal(t, []string{"first", "third"}, e.Messages(validkit.Attr("email")))
	assert.Equal(t, []validkit.Key{validkit.Attr("email"), validkit.Attr("name")}, e.Keys())
	assert.Equal(t, "first", e.First(validkit.Attr("email")))
	assert.Equal(t, 3, e.Len())
}

func TestErrorsNoDeduplication(t *testing.T) {
	e := validkit.NewErrors()
	e.Add(validkit.Attr("name"), "same message")
	e.Add(validkit.Attr("name"), "same message")

	assert.Equal(t, []string{"same message", "same message"}, e.Messages(validkit.Attr("name")))
}

func TestErrorsModelLevel(t *testing.T) {
	e := validkit.NewErrors()
	e.Add(validkit.ModelLevel(), "inconsistent state")

	assert.True(t, e.Has(validkit.ModelLevel()))
	assert.False(t, e.Has(validkit.Attr("*")))
	assert.True(t, validkit.ModelLevel().IsModelLevel())
	assert.False(t, validkit.Attr("*").IsModelLevel())
}

func TestErrorsModelLevelKeyDistinctFromAttribute(t *testing.T) {
	// An attribute literally named "*" must not collide with the
	// model-level bucket.
	e := validkit.NewErrors()
	e.Add(validkit.Attr("*"), "attribute error")
	e.Add(validkit.ModelLevel(), "model error")

	assert.Equal(t, []string{"attribute error"}, e.Messages(validkit.Attr("*")))
	assert.Equal(t, []string{"model error"}, e.Messages(validkit.ModelLevel()))
	assert.Equal(t, 2, e.Len())
}

func TestErrorsFirstPerKey(t *testing.T) {
	e := validkit.NewErrors()
	e.Add(validkit.Attr("email"), "bad format")
	e.Add(validkit.Attr("email"), "too long")
	e.Add(validkit.Attr("name"), "blank")

	first := e.FirstPerKey()
	assert.Equal(t, "bad format", first[validkit.Attr("email")])
	assert.Equal(t, "blank", first[validkit.Attr("name")])
	assert.Len(t, first, 2)
}

func TestErrorsEmpty(t *testing.T) {
	e := validkit.NewErrors()
	assert.True(t, e.IsEmpty())
	assert.False(t, e.HasAny())
	assert.Nil(t, e.All())
	assert.Empty(t, e.First(validkit.Attr("x")))

	e.Add(validkit.Attr("x"), "boom")
	assert.False(t, e.IsEmpty())

	e.Clear()
	assert.True(t, e.IsEmpty())
	assert.Zero(t, e.Len())
}

func TestErrorsErrorString(t *testing.T) {
	e := validkit.NewErrors()
	assert.Equal(t, "validation failed", e.Error())

	e.Add(validkit.Attr("name"), "cannot be blank")
	assert.Equal(t, "validation error: name: cannot be blank", e.Error())
}

func TestErrorsMarshalJSON(t *testing.T) {
	e := validkit.NewErrors()
	e.Add(validkit.Attr("email"), "bad")
	e.Add(validkit.Attr("email"), "worse")
	e.Add(validkit.ModelLevel(), "model broken")

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string][]string{
		"email": {"bad", "worse"},
		"*":     {"model broken"},
	}, decoded)
}
