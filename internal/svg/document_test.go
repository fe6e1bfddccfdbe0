package svg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetElementByID(t *testing.T) {
	doc := NewDocument("")
	doc.Root.Append("g").Append("svg").Set("id", "chart")

	el, err := doc.GetElementByID("chart")
	require.NoError(t, err)
	assert.Equal(t, "svg", el.Tag)

	_, err = doc.GetElementByID("missing")
	assert.True(t, errors.Is(err, ErrSurfaceNotFound))
}

func TestSetReplacesAttribute(t *testing.T) {
	el := NewElement("circle").Set("r", 4).Set("cx", 0.5).Set("r", 5)

	require.Len(t, el.Attrs, 2)
	v, ok := el.Get("r")
	assert.True(t, ok)
	assert.Equal(t, "5", v)
	v, _ = el.Get("cx")
	assert.Equal(t, "0.5", v)
}

func TestEncodeEscapesText(t *testing.T) {
	doc := NewDocument("root")
	doc.Root.Append("text").Set("x", -5).SetText("a < b & c")

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" id="root"><text x="-5">a &lt; b &amp; c</text></svg>`,
		string(out))
}

func TestFindAll(t *testing.T) {
	doc := NewDocument("root")
	g := doc.Root.Append("g")
	g.Append("circle")
	g.Append("g").Append("circle")

	assert.Len(t, doc.Root.FindAll("circle"), 2)
	assert.Len(t, doc.Root.FindAll("g"), 2)
	assert.Nil(t, doc.Root.Child("circle"))
	assert.NotNil(t, g.Child("circle"))
}
