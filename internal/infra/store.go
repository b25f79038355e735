package infra

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"gorm.io/gorm"

	"factcheck/internal/config"
)

// Store is the process-wide handle for table operations. Exactly one of DB
// or Rest is set, depending on the configured driver. Both clients are safe
// for concurrent use.
type Store struct {
	DB   *gorm.DB
	Rest *postgrest.Client
}

func NewStore(cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := InitPostgresql(cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db}, nil
	case config.StoreDriverRest:
		client, err := NewPostgrestClient(cfg.Supabase.URL, cfg.TableKey())
		if err != nil {
			return nil, err
		}
		return &Store{Rest: client}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func (s *Store) Close() {
	if s.DB != nil {
		ClosePostgresql(s.DB)
	}
}
