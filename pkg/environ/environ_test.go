package environ

import (
	"testing"

	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertNumberEqual(t *testing.T, expect float64, v lisp.LVal) {
	t.Helper()
	x, ok := lisp.GetNumber(v)
	if assert.True(t, ok) {
		assert.Equal(t, expect, x)
	}
}

func TestRoot(t *testing.T) {
	vara := symbol.Intern("a")
	varb := symbol.Intern("b")
	env := New(nil, nil)
	assert.Equal(t, 0, env.Len())
	assert.Nil(t, env.Parent())
	env.Put(vara, lisp.Number(1))
	_, ok := env.Get(varb)
	assert.False(t, ok)
	v, ok := env.Get(vara)
	if assert.True(t, ok) {
		AssertNumberEqual(t, 1, v)
	}
	env.Put(vara, lisp.Number(2))
	assert.Equal(t, 1, env.Len())
	v, _ = env.Get(vara)
	AssertNumberEqual(t, 2, v)
}

func TestChild(t *testing.T) {
	vara := symbol.Intern("a")
	varb := symbol.Intern("b")
	root := New(nil, nil)
	root.Put(vara, lisp.Number(1))
	root.Put(varb, lisp.Number(2))
	env := New(root, nil)
	assert.Equal(t, 0, env.Len())
	assert.Equal(t, root, env.Parent())
	env.Put(varb, lisp.Number(3))
	v, ok := env.Get(vara)
	if assert.True(t, ok) {
		AssertNumberEqual(t, 1, v)
	}
	v, ok = env.Get(varb)
	if assert.True(t, ok) {
		AssertNumberEqual(t, 3, v)
	}
	v, ok = root.Get(varb)
	if assert.True(t, ok) {
		AssertNumberEqual(t, 2, v)
	}
}

func TestExtend(t *testing.T) {
	varx := symbol.Intern("x")
	vary := symbol.Intern("y")
	root := New(nil, nil)
	root.Put(varx, lisp.Number(10))

	env, err := Extend(root, []symbol.ID{vary, varx}, []lisp.LVal{lisp.Number(5), lisp.Number(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, env.Len())
	v, _ := env.Get(varx)
	AssertNumberEqual(t, 1, v)
	v, _ = env.Get(vary)
	AssertNumberEqual(t, 5, v)

	v, _ = root.Get(varx)
	AssertNumberEqual(t, 10, v)
	_, ok := root.Get(vary)
	assert.False(t, ok)

	_, err = Extend(root, []symbol.ID{varx}, nil)
	assert.Error(t, err)
}
