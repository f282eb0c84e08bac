package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_ValueAndWith(t *testing.T) {
	var f Filter
	assert.Equal(t, "", f.Value("status"))

	g := f.With("status", "new")
	assert.Equal(t, "new", g.Value("status"))
	assert.Equal(t, "", f.Value("status"), "исходный фильтр не меняется")

	h := g.With("priority", "")
	assert.NotContains(t, h.Filter, "priority")
	assert.Equal(t, "new", h.Value("status"))
}
