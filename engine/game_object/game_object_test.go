package game_object

import (
	"math"
	"testing"

	"triforce/common"
	"triforce/engine/model"

	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	sx, sy, sz := obj.Scale()
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(1), sy)
	assert.Equal(t, float32(1), sz)
	assert.Nil(t, obj.Model())
	assert.Nil(t, obj.BindGroupProvider())
}

func TestGameObjectBuilderOptions(t *testing.T) {
	mdl := model.NewModel(model.WithName("tri"))
	obj := NewGameObject(
		WithID(7),
		WithModel(mdl),
		WithPosition(1, 2, 3),
		WithRotation(0, math.Pi/2, 0),
		WithScale(2, 2, 2),
		WithEnabled(false),
	)

	assert.Equal(t, uint64(7), obj.ID())
	assert.Equal(t, mdl, obj.Model())
	assert.False(t, obj.Enabled())

	x, y, z := obj.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
}

func TestModelMatrixIdentityTransform(t *testing.T) {
	obj := NewGameObject()

	var identity [16]float32
	common.Identity(identity[:])
	assert.Equal(t, identity, obj.ModelMatrix())
}

func TestModelMatrixTranslation(t *testing.T) {
	obj := NewGameObject(WithPosition(4, -2, 9))

	m := obj.ModelMatrix()
	assert.Equal(t, float32(4), m[12])
	assert.Equal(t, float32(-2), m[13])
	assert.Equal(t, float32(9), m[14])
}

func TestModelMatrixYawRotationWithScale(t *testing.T) {
	obj := NewGameObject(
		WithRotation(0, math.Pi/2, 0),
		WithScale(2, 3, 4),
	)

	// A 90 degree yaw maps local +X to -Z and local +Z to +X, with each
	// column scaled by its own axis factor.
	m := obj.ModelMatrix()
	assert.InDelta(t, float32(0), m[0], 1e-6)
	assert.InDelta(t, float32(-2), m[2], 1e-6)
	assert.InDelta(t, float32(3), m[5], 1e-6)
	assert.InDelta(t, float32(4), m[8], 1e-6)
	assert.InDelta(t, float32(0), m[10], 1e-6)
}

func TestSettersUpdateTransform(t *testing.T) {
	obj := NewGameObject()

	obj.SetPosition(1, 1, 1)
	obj.SetScale(3, 3, 3)
	obj.SetRotation(0, 0, 0)

	m := obj.ModelMatrix()
	assert.Equal(t, float32(3), m[0])
	assert.Equal(t, float32(3), m[5])
	assert.Equal(t, float32(3), m[10])
	assert.Equal(t, float32(1), m[12])
}
