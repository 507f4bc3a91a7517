package localstore

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// Ensure IdentityProvider implements the interface.
var _ driven.DeviceIdentity = (*IdentityProvider)(nil)

// deviceIDKey is where the device identifier persists.
const deviceIDKey = "device_id"

// IdentityProvider issues the stable per-device identifier.
type IdentityProvider struct {
	kv driven.KeyValueStore

	mu     sync.Mutex
	cached string
}

// NewIdentityProvider creates a new device identity provider.
func NewIdentityProvider(kv driven.KeyValueStore) *IdentityProvider {
	return &IdentityProvider{kv: kv}
}

// DeviceID returns the persisted device identifier, generating one on
// first call. When storage is unavailable the id degrades to a fresh
// value per call; a known limitation of the storage boundary.
func (p *IdentityProvider) DeviceID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, nil
	}

	if p.kv == nil {
		return newDeviceID(), nil
	}

	stored, ok, err := p.kv.Get(deviceIDKey)
	if err != nil {
		logger.Warn("Device id storage unavailable, using transient id: %v", err)
		return newDeviceID(), nil
	}
	if ok {
		p.cached = stored
		return stored, nil
	}

	id := newDeviceID()
	if err := p.kv.Set(deviceIDKey, id); err != nil {
		logger.Warn("Failed to persist device id: %v", err)
		return id, nil
	}

	p.cached = id
	return id, nil
}

// newDeviceID composes a timestamp with a short random suffix.
func newDeviceID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("device_%d_%s", time.Now().UnixMilli(), suffix)
}
