package misc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, "a", Min("a", "b"))
}

func TestStringLimit(t *testing.T) {
	assert.Equal(t, "", StringLimit("hello", -1))
	assert.Equal(t, "he", StringLimit("hello", 2))
	assert.Equal(t, "hello", StringLimit("hello", 10))
	assert.Equal(t, "hell...", StringLimit("hello world", 7))
}
