package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperReducer(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer([]float64{1.5, 2.5}, func(acc float64, v float64) float64 { return acc + v }, 0)
	assert.Equal(t, 4.0, sum)
}

func TestIsProduction(t *testing.T) {
	t.Setenv(EnvKeyGoEnv, "production")
	assert.True(t, IsProduction())

	for _, env := range []string{"", "development", "test"} {
		t.Setenv(EnvKeyGoEnv, env)
		assert.False(t, IsProduction(), env)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_ENERGY_FLOAT", " 12.5 ")
	t.Setenv("TEST_ENERGY_HEX", "0x01")
	t.Setenv("TEST_ENERGY_BOOL", "true")
	t.Setenv("TEST_ENERGY_MS", "5000")
	t.Setenv("TEST_ENERGY_BLANK", "   ")

	f, err := EnvFloatOrDefault("TEST_ENERGY_FLOAT", 0)
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	n, err := EnvIntOrDefault("TEST_ENERGY_HEX", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, err := EnvBoolOrDefault("TEST_ENERGY_BOOL", false)
	require.NoError(t, err)
	assert.True(t, b)

	d, err := EnvMillisOrDefault("TEST_ENERGY_MS", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)

	assert.Equal(t, "fallback", EnvOrDefault("TEST_ENERGY_BLANK", "fallback"))

	n, err = EnvIntOrDefault("TEST_ENERGY_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestEnvHelpersInvalid(t *testing.T) {
	t.Setenv("TEST_ENERGY_BAD", "abc")

	_, err := EnvFloatOrDefault("TEST_ENERGY_BAD", 0)
	assert.Error(t, err)
	_, err = EnvIntOrDefault("TEST_ENERGY_BAD", 0)
	assert.Error(t, err)
	_, err = EnvBoolOrDefault("TEST_ENERGY_BAD", false)
	assert.Error(t, err)
	_, err = EnvMillisOrDefault("TEST_ENERGY_BAD", 0)
	assert.Error(t, err)
}
