package remote

import (
	"context"
	"fmt"

	"github.com/Artemoon13/health-os/internal/config"
)

// NewStore builds the configured sync backend. Returns nil when sync
// is disabled; callers treat a nil store as "local only".
func NewStore(ctx context.Context, cfg *config.Config, deviceID string) (Store, error) {
	switch cfg.SyncBackend {
	case config.SyncDisabled:
		return nil, nil
	case config.SyncHTTP:
		return &HTTPStore{
			BaseURL:  cfg.SyncBaseURL,
			Token:    cfg.SyncToken,
			DeviceID: deviceID,
		}, nil
	case config.SyncPostgres:
		return NewPostgresStore(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown sync backend %q", cfg.SyncBackend)
	}
}
