// internal/di/container_test.go
package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerRegisterAndGet(t *testing.T) {
	container := NewContainer()

	container.Register("stats", "stats-service")

	assert.True(t, container.Has("stats"))
	assert.Equal(t, "stats-service", container.Get("stats"))
	assert.Nil(t, container.Get("missing"))
	assert.False(t, container.Has("missing"))
}

func TestContainerRemoveAndClear(t *testing.T) {
	container := NewContainer()

	container.Register("a", 1)
	container.Register("b", 2)
	assert.ElementsMatch(t, []string{"a", "b"}, container.GetNames())

	container.Remove("a")
	assert.False(t, container.Has("a"))
	assert.True(t, container.Has("b"))

	container.Clear()
	assert.Empty(t, container.GetNames())
}

func TestGetContainerSingleton(t *testing.T) {
	assert.Same(t, GetContainer(), GetContainer())
}
