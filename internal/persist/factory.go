package persist

import (
	"fmt"

	"evocoffee/internal/config"
)

// BackendType selects a persistence backend implementation.
type BackendType string

const (
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) IsValid() bool {
	switch bt {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Open builds the persistence backend named by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch BackendType(cfg.DataBackend) {
	case FileBackend:
		return NewFileStore(cfg.DataPath)
	case SQLiteBackend:
		return NewSQLiteStore(cfg.SQLiteDBPath)
	case MemoryBackend:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
