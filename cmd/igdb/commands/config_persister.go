package commands

import (
	"sync"
	"time"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores a freshly issued token and its expiry in the config file.
func (p *ConfigPersister) UpdateToken(token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	config.Token = token
	config.TokenExpiresAt = nil

	if !expiresAt.IsZero() {
		expiresAt = expiresAt.UTC()
		config.TokenExpiresAt = &expiresAt
	}

	return saveConfigStruct(config)
}
