package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/takemehome/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks registered with OnConfigChange run after every successful reload.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to reload config, keeping previous values")
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := config
		callback(&cfg)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. A file that fails to parse or validate leaves
// the current config in place. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.decode()
}
