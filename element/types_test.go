package element

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		e := New("vertex", 2)
		assert.True(t, e.Empty())
		assert.Nil(t, e.PropertyNames())

		e.IntProperties = append(e.IntProperties, NewProperty("vertex", "label", []int32{1, 2}))
		assert.False(t, e.Empty())
	})

	t.Run("PropertyNamesInBucketOrder", func(t *testing.T) {
		e := New("vertex", 1)
		e.FloatListProperties = append(e.FloatListProperties, NewProperty("vertex", "weights", [][]float32{{1}}))
		e.Vec3Properties = append(e.Vec3Properties, NewProperty("vertex", "point", []Vec3{{1, 2, 3}}))
		e.FloatProperties = append(e.FloatProperties, NewProperty("vertex", "quality", []float32{0.5}))
		e.IntListProperties = append(e.IntListProperties, NewProperty("vertex", "ids", [][]int32{{4, 5}}))
		e.IntProperties = append(e.IntProperties, NewProperty("vertex", "label", []int32{7}))

		assert.Equal(t, []string{"point", "quality", "label", "ids", "weights"}, e.PropertyNames())
	})

	t.Run("Validate", func(t *testing.T) {
		e := New("vertex", 2)
		e.Vec3Properties = append(e.Vec3Properties, NewProperty("vertex", "point", []Vec3{{1, 2, 3}, {4, 5, 6}}))
		e.IntListProperties = append(e.IntListProperties, NewProperty("vertex", "ids", [][]int32{{1}, {}}))
		require.NoError(t, e.Validate())

		e.FloatProperties = append(e.FloatProperties, NewProperty("vertex", "quality", []float32{0.5}))
		err := e.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLengthMismatch))
		assert.Contains(t, err.Error(), "quality")
	})

	t.Run("NegativeInstances", func(t *testing.T) {
		e := New("vertex", -1)
		assert.Error(t, e.Validate())
	})
}
