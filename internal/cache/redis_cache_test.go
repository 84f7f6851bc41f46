package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCacheKeyFormat(t *testing.T) {
	assert.Equal(t, "snapshot:ABC123", SnapshotCacheKey("ABC123"))
}

func TestSnapshotDigestIsDeterministic(t *testing.T) {
	a := SnapshotDigest("game-1", 123.456)
	b := SnapshotDigest("game-1", 123.456)
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestSnapshotDigestChangesWithGameTime(t *testing.T) {
	a := SnapshotDigest("game-1", 100.0)
	b := SnapshotDigest("game-1", 100.5)
	assert.NotEqual(t, a, b)
}

func TestSnapshotDigestChangesWithGameID(t *testing.T) {
	a := SnapshotDigest("game-1", 100.0)
	b := SnapshotDigest("game-2", 100.0)
	assert.NotEqual(t, a, b)
}

func TestDisabledServiceNoOpsInsteadOfErroring(t *testing.T) {
	cs := NewCacheService(CacheConfig{Enabled: false})
	assert.False(t, cs.IsEnabled())
	assert.NoError(t, cs.SetString("k", "v", 0))
	assert.NoError(t, cs.Delete("k"))
	assert.False(t, cs.Exists("k"))
}
