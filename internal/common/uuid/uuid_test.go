package uuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoped(t *testing.T) {
	gen := New()

	id := Scoped(gen, "guild-1")
	assert.True(t, strings.HasPrefix(id, "guild-1-"))
	assert.Len(t, id, len("guild-1-")+36)

	assert.Len(t, Scoped(gen, ""), 36)
	assert.NotEqual(t, Scoped(gen, "guild-1"), Scoped(gen, "guild-1"))
}
