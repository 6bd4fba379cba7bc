package datastore

import (
	"context"
	"fmt"
	"time"
)

var (
	ErrNameStoreNotEnabled = fmt.Errorf("name store is not enabled")
	ErrNameStoreNotFound   = fmt.Errorf("no name found in name store")
	ErrNameStoreDuplicate  = fmt.Errorf("name already reserved in name store")
	ErrNameStoreConnection = fmt.Errorf("failed to connect to name store")
	ErrNameStoreSelect     = fmt.Errorf("failed to select from name store")
	ErrNameStoreInsert     = fmt.Errorf("failed to insert into name store")
)

// ReservedName is an identifier that has been handed out and may not be issued again
type ReservedName struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NameStore keeps reserved identifiers in long term storage
type NameStore interface {
	Reserve(ctx context.Context, name string) (*ReservedName, error)
	GetName(ctx context.Context, name string) (*ReservedName, error)
	Close(ctx context.Context) error
}

// StatsStore counts generated names per kind
type StatsStore interface {
	IncrStat(ctx context.Context, kind string) error
	GetStats(ctx context.Context, kinds []string) (map[string]int, error)
	Close() error
}
