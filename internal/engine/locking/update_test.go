package locking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/engine/locking"
)

func TestNewUpdatePolicy(t *testing.T) {
	p, err := locking.NewUpdatePolicy(false, []string{"org.slf4j:slf4j-api", "com.google.guava:*"})
	require.NoError(t, err)
	assert.False(t, p.IsZero())

	for _, sel := range []string{"", "guava", "g:", ":a", "g:a:1.0", "g a:b"} {
		_, err := locking.NewUpdatePolicy(false, []string{sel})
		assert.ErrorIs(t, err, domain.ErrInvalidUpdateSelector, sel)
	}
}

func TestUpdatePolicy_Allows(t *testing.T) {
	p, err := locking.NewUpdatePolicy(false, []string{"org.slf4j:slf4j-api", "com.google.guava:*"})
	require.NoError(t, err)

	assert.True(t, p.Allows(domain.MustModuleCoordinate("org.slf4j", "slf4j-api")))
	assert.False(t, p.Allows(domain.MustModuleCoordinate("org.slf4j", "slf4j-simple")))
	assert.True(t, p.Allows(domain.MustModuleCoordinate("com.google.guava", "guava")))
	assert.True(t, p.Allows(domain.MustModuleCoordinate("com.google.guava", "failureaccess")))
	assert.False(t, p.Allows(domain.MustModuleCoordinate("com.google", "guava")))
}

func TestUpdatePolicy_WriteAll(t *testing.T) {
	p, err := locking.NewUpdatePolicy(true, nil)
	require.NoError(t, err)
	assert.True(t, p.Allows(domain.MustModuleCoordinate("any", "module")))

	var zero locking.UpdatePolicy
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Allows(domain.MustModuleCoordinate("any", "module")))
}
