package pure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/lambda_ive_go/pure"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, int32(3), pure.Convert[float64, int32]().Apply(3.9))
	assert.Equal(t, int32(-3), pure.Convert[float64, int32]().Apply(-3.9))
	assert.Equal(t, byte(0), pure.Convert[int, byte]().Apply(256))
	assert.Equal(t, 2.0, pure.Convert[int16, float64]().Apply(2))
}

func TestOperators(t *testing.T) {
	assert.Equal(t, 5, pure.Add[int]().Apply(2, 3))
	assert.Equal(t, 7.5, pure.Multiply[float64]().Apply(2.5, 3))
	assert.Equal(t, "a", pure.Min[string]().Apply("b", "a"))
	assert.Equal(t, int64(9), pure.Max[int64]().Apply(9, -1))
	assert.Equal(t, uint8(4), pure.Add[uint8]().Reversed().Partial(1).Apply(3))
}

func TestIsZeroValue(t *testing.T) {
	assert.True(t, pure.IsZeroValue[int]().Test(0))
	assert.False(t, pure.IsZeroValue[float32]().Test(0.5))
	assert.True(t, pure.IsZeroValue[bool]().Test(false))
	assert.True(t, pure.IsZeroValue[rune]().Negate().Test('x'))
}

func TestIdentityAndConstant(t *testing.T) {
	assert.Equal(t, "x", pure.Identity[string]().Apply("x"))
	assert.Equal(t, 3, pure.Constant(3).Apply())
	assert.Equal(t, 6, pure.AndThen1(pure.Identity[int](), func(n int) int { return n * 2 }).Apply(3))
}
