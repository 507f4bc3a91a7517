package localstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/storage/memory"
)

func TestIdentityProvider_GeneratesAndPersists(t *testing.T) {
	kv := memory.NewKeyValueStore()
	provider := NewIdentityProvider(kv)

	id, err := provider.DeviceID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "device_"))

	stored, ok, err := kv.Get("device_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, stored)
}

func TestIdentityProvider_StableAcrossCalls(t *testing.T) {
	kv := memory.NewKeyValueStore()
	provider := NewIdentityProvider(kv)

	first, err := provider.DeviceID()
	require.NoError(t, err)

	second, err := provider.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIdentityProvider_StableAcrossInstances(t *testing.T) {
	kv := memory.NewKeyValueStore()

	first, err := NewIdentityProvider(kv).DeviceID()
	require.NoError(t, err)

	second, err := NewIdentityProvider(kv).DeviceID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIdentityProvider_TransientWithoutStorage(t *testing.T) {
	provider := NewIdentityProvider(nil)

	first, err := provider.DeviceID()
	require.NoError(t, err)

	second, err := provider.DeviceID()
	require.NoError(t, err)

	// Without storage each call yields a fresh identifier.
	assert.NotEqual(t, first, second)
}
