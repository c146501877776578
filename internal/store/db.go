package store

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/tabstrip/internal/debug"
)

type EventType int

const (
	FetchSession EventType = iota
	SaveSession
	FetchSettings
	SaveSetting
)

// SessionTab is one persisted tab, in display order.
type SessionTab struct {
	ID      string
	Title   string
	Tooltip string
}

type Request struct {
	Op     EventType
	Tabs   []SessionTab
	Active string
	Key    string
	Value  string
}

type Response struct {
	Op       EventType
	Tabs     []SessionTab      // Session tabs in display order
	Active   string            // Active tab ID, "" if none
	Settings map[string]string // Key-value settings
	Err      error
}

type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
	}
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// Performance Tuning
	// WAL mode allows simultaneous readers and writers
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	// Synchronous NORMAL is safe against app crashes, faster than FULL
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		return err
	}

	// Schema - Session tabs table, position is the display order
	query := `
	CREATE TABLE IF NOT EXISTS session_tabs (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		tooltip TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	// Schema - Settings table
	settingsQuery := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(settingsQuery); err != nil {
		return err
	}

	d.conn = db
	return nil
}

func (d *DB) Start() {
	for req := range d.RequestChan {
		switch req.Op {
		case FetchSession:
			d.handleFetchSession()
		case SaveSession:
			d.handleSaveSession(req.Tabs, req.Active)
		case FetchSettings:
			d.handleFetchSettings()
		case SaveSetting:
			d.handleSaveSetting(req.Key, req.Value)
		}
	}
}

func (d *DB) handleFetchSession() {
	rows, err := d.conn.Query("SELECT id, title, tooltip FROM session_tabs ORDER BY position ASC")
	if err != nil {
		d.ResponseChan <- Response{Op: FetchSession, Err: err}
		return
	}
	defer rows.Close()

	var tabs []SessionTab
	for rows.Next() {
		var t SessionTab
		if err := rows.Scan(&t.ID, &t.Title, &t.Tooltip); err == nil {
			tabs = append(tabs, t)
		}
	}

	var active string
	row := d.conn.QueryRow("SELECT value FROM settings WHERE key = 'active_tab'")
	if err := row.Scan(&active); err != nil && err != sql.ErrNoRows {
		log.Printf("Store Error: %v", err)
	}

	debug.Log(debug.STORE, "fetched session: %d tabs, active=%q", len(tabs), active)
	d.ResponseChan <- Response{Op: FetchSession, Tabs: tabs, Active: active}
}

// handleSaveSession replaces the whole session in one transaction so a
// crash never leaves a half-written tab list.
func (d *DB) handleSaveSession(tabs []SessionTab, active string) {
	tx, err := d.conn.Begin()
	if err != nil {
		log.Printf("Store Error: %v", err)
		return
	}

	if _, err := tx.Exec("DELETE FROM session_tabs"); err != nil {
		log.Printf("Store Error: %v", err)
		tx.Rollback()
		return
	}
	for i, t := range tabs {
		if _, err := tx.Exec(
			"INSERT INTO session_tabs (position, id, title, tooltip) VALUES (?, ?, ?, ?)",
			i, t.ID, t.Title, t.Tooltip,
		); err != nil {
			log.Printf("Store Error: %v", err)
			tx.Rollback()
			return
		}
	}
	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES ('active_tab', ?)", active,
	); err != nil {
		log.Printf("Store Error: %v", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Store Error: %v", err)
		return
	}
	debug.Log(debug.STORE, "saved session: %d tabs, active=%q", len(tabs), active)
}

func (d *DB) handleFetchSettings() {
	rows, err := d.conn.Query("SELECT key, value FROM settings")
	if err != nil {
		d.ResponseChan <- Response{Op: FetchSettings, Err: err}
		return
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err == nil {
			settings[key] = value
		}
	}

	d.ResponseChan <- Response{Op: FetchSettings, Settings: settings}
}

func (d *DB) handleSaveSetting(key, value string) {
	// Use INSERT OR REPLACE to upsert the setting
	_, err := d.conn.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		log.Printf("Store Error saving setting: %v", err)
	}
	// Trigger a fetch to sync settings
	d.handleFetchSettings()
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}
