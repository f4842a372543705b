package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Artemoon13/health-os/internal/model"
)

const stateKey = "health-os-state"

// LoadState reads the persisted snapshot. A missing row is not an
// error: the zero snapshot plus false is returned and the caller seeds
// defaults.
func LoadState(db *sql.DB) (model.Snapshot, bool, error) {
	var payload string
	err := db.QueryRow(`SELECT payload FROM app_state WHERE key = ?`, stateKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("load state: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decode state: %w", err)
	}
	return snap, true, nil
}

// SaveState writes the full snapshot as one blob. Callers treat a
// failure as non-fatal: in-memory state stays authoritative.
func SaveState(db *sql.DB, snap model.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = db.Exec(`
INSERT INTO app_state(key, payload, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, stateKey, string(payload))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Setting reads a device-level setting, empty string when unset.
func Setting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %q: %w", key, err)
	}
	return value, nil
}

func SetSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
INSERT INTO settings(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, key, value)
	if err != nil {
		return fmt.Errorf("write setting %q: %w", key, err)
	}
	return nil
}

// DeviceID returns the stable per-install identifier, generating and
// persisting one on first use.
func DeviceID(db *sql.DB) (string, error) {
	id, err := Setting(db, "device_id")
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := SetSetting(db, "device_id", id); err != nil {
		return "", err
	}
	return id, nil
}
