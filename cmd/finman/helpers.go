package main

import (
	"errors"
	"fmt"

	"finman/internal/common"
	"finman/internal/config"
	"finman/internal/ledger"
	"finman/internal/storage"

	"github.com/spf13/viper"
)

// openStore opens the configured database without touching the schema;
// schema setup is the migrate command's job.
func openStore() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/finman/finman.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

// getLedger opens the store and wraps it in a ledger. The returned
// cleanup closes the store.
func getLedger() (*ledger.Ledger, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store), func() { _ = store.Close() }, nil
}

// friendlyError maps engine errors to messages matching the CLI's voice.
func friendlyError(err error) string {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Validation Error: %s", verr.Error())
	}
	if common.IsOverBudget(err) {
		return "Error: Adding this expense would exceed your total income. Please adjust the amount or add more income first."
	}
	return err.Error()
}
