package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minuscule/fault"
)

func TestConfigError_MessageAndUnwrap(t *testing.T) {
	err := fault.Config("rank", 9, []int{2, 3, 4}, "for type A")
	assert.Equal(t, "minuscule: invalid rank 9 for type A; allowed: 2, 3, 4", err.Error())
	assert.ErrorIs(t, err, fault.ErrConfiguration)
	assert.False(t, fault.IsInvariant(err))

	var ce *fault.ConfigError
	wrapped := fmt.Errorf("build: %w", err)
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, "rank", ce.Param)
	assert.Equal(t, []string{"2", "3", "4"}, ce.Allowed)
}

func TestConfigError_NoAllowedList(t *testing.T) {
	err := fault.Config[string]("word", "1 1", nil, "")
	assert.Equal(t, "minuscule: invalid word 1 1", err.Error())
}

func TestInvariant(t *testing.T) {
	err := fault.Invariant("cycle at %d", 3)
	assert.True(t, fault.IsInvariant(err))
	assert.False(t, fault.IsConfiguration(err))
	assert.Contains(t, err.Error(), "cycle at 3")
}
