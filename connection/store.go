package connection

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ppdb/config"
	"ppdb/store"
	"ppdb/store/fsstore"
	"ppdb/store/memstore"
	"ppdb/store/mongostore"
)

// OpenStore connects the driver named by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFirestore:
		client, err := FBConnection(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		return fsstore.New(client), nil
	case config.DriverMongo:
		st, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.MongoDatabase).Msg("MongoDB connection successful")
		return st, nil
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
