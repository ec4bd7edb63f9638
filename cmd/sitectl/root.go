package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/config"
	"github.com/bwdtc/bridgewater-dems/internal/database"
	"github.com/bwdtc/bridgewater-dems/internal/database/migration"
	"github.com/bwdtc/bridgewater-dems/internal/logger"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

// storeOpener returns the configured store and a func releasing it.
type storeOpener func(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (storage.Store, func(), error)

type cli struct {
	cfg   *config.AppConfig
	log   *zap.Logger
	store storage.Store
	close func()
}

func newRootCmd(open storeOpener) *cobra.Command {
	app := &cli{}

	root := &cobra.Command{
		Use:          "sitectl",
		Short:        "Manage Bridgewater DTC site content",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.cfg = config.Load()
			log, err := logger.New(app.cfg.Log.Level, true)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			app.log = log
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			store, closeFn, err := open(cmd.Context(), app.cfg, log)
			if err != nil {
				return err
			}
			app.store, app.close = store, closeFn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.close != nil {
				app.close()
			}
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}

	root.AddCommand(
		newDefaultsCmd(app),
		newShowCmd(app),
		newImportCmd(app),
		newResetCmd(app),
		newRecipientsCmd(app),
	)
	return root
}

// openStore opens the backend named by STORAGE_BACKEND, connecting to
// postgres first when that backend is selected.
func openStore(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (storage.Store, func(), error) {
	var db *sql.DB
	if cfg.StorageBackend == config.BackendPostgres {
		var err error
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	store, err := storage.New(ctx, cfg, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, nil, err
	}

	return store, func() {
		if c, ok := store.(io.Closer); ok {
			_ = c.Close()
		}
		if db != nil {
			_ = db.Close()
		}
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
