package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_StringDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "7", Number(7).String())
	assert.Equal(t, "3.5", Number(3.5).String())
}

func TestNumber_Equal(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(Boolean(true)))
}

func TestList_EqualIsElementWiseInOrder(t *testing.T) {
	a := NewList([]Value{Number(1), Number(2)})
	b := NewList([]Value{Number(1), Number(2)})
	c := NewList([]Value{Number(2), Number(1)})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRange_EqualRequiresSameBoundsAndInclusivity(t *testing.T) {
	a := &Range{Start: Number(1), End: Number(3), Inclusive: true}
	b := &Range{Start: Number(1), End: Number(3), Inclusive: true}
	c := &Range{Start: Number(1), End: Number(3), Inclusive: false}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRange_Display(t *testing.T) {
	assert.Equal(t, "1..3", (&Range{Start: Number(1), End: Number(3)}).String())
	assert.Equal(t, "1..=3", (&Range{Start: Number(1), End: Number(3), Inclusive: true}).String())
}

func TestString_ConcatMutatesInPlace(t *testing.T) {
	s := NewString("a")
	s.Concat([]Value{Number(1), Boolean(true)})
	assert.Equal(t, "a1true", s.String())
}

func TestInstance_DifferentClassesNeverEqual(t *testing.T) {
	a := NewClassObject("A")
	b := NewClassObject("B")
	ia := &Instance{Object: NewInstanceObject(a)}
	ib := &Instance{Object: NewInstanceObject(b)}
	assert.False(t, ia.Equal(ib))
}

func TestInstance_EqualIsFieldByFieldInInsertionOrder(t *testing.T) {
	class := NewClassObject("Point")
	ia := &Instance{Object: NewInstanceObject(class)}
	ia.Object.Fields.Set("x", Number(1))
	ia.Object.Fields.Set("y", Number(2))

	ib := &Instance{Object: NewInstanceObject(class)}
	ib.Object.Fields.Set("x", Number(1))
	ib.Object.Fields.Set("y", Number(2))

	assert.True(t, ia.Equal(ib))
	assert.Equal(t, "Point(x: 1, y: 2)", ia.String())
}
