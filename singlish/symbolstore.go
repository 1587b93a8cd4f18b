package singlish

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	sql "database/sql"
	"fmt"
	"time"

	// sqlite
	_ "modernc.org/sqlite"
)

// SymbolStore is a scheme persisted as a varnam style SQLite file.
// The file keeps the rule rows in insertion order, so table priority
// survives a round trip.
type SymbolStore struct {
	conn      *sql.DB
	path      string
	buffering bool
}

func openDB(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// OpenSymbolStore opens a store file, creating it with an empty
// schema when it doesn't exist yet.
func OpenSymbolStore(path string) (*SymbolStore, error) {
	conn, err := openDB(path)
	if err != nil {
		return nil, err
	}

	// One connection, so BEGIN and COMMIT land on the same handle
	conn.SetMaxOpenConns(1)

	store := SymbolStore{conn: conn, path: path}

	if err = store.ensureSchemaExists(); err != nil {
		conn.Close()
		return nil, err
	}

	return &store, nil
}

func (store *SymbolStore) ensureSchemaExists() error {
	queries := []string{
		`
		create table if not exists metadata (key TEXT UNIQUE, value TEXT);
		`,
		`
		create table if not exists symbols (id INTEGER PRIMARY KEY AUTOINCREMENT, type INTEGER, pattern TEXT, value1 TEXT, value2 TEXT, value3 TEXT, tag TEXT, match_type INTEGER, priority INTEGER DEFAULT 0, accept_condition INTEGER, flags INTEGER DEFAULT 0, weight INTEGER);
		`,
		`
		create index if not exists index_metadata on metadata (key);
		`,
		`
		create index if not exists index_pattern on symbols (pattern);
		`,
		`
		create index if not exists index_value1 on symbols (value1);
		`,
		`
		create index if not exists index_value2 on symbols (value2);
		`}

	for _, query := range queries {
		ctx, cancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelFunc()

		stmt, err := store.conn.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		defer stmt.Close()

		_, err = stmt.ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

func (store *SymbolStore) startBuffering() error {
	if store.buffering {
		return nil
	}

	store.conn.Exec("BEGIN;")
	store.buffering = true
	return nil
}

func (store *SymbolStore) flushChanges() error {
	if !store.buffering {
		return nil
	}

	_, err := store.conn.Exec("COMMIT;")
	if err != nil {
		return fmt.Errorf("failed to flush changes: " + err.Error())
	}

	store.buffering = false

	_, err = store.conn.Exec("VACUUM")
	if err != nil {
		return fmt.Errorf("failed to compact db: " + err.Error())
	}

	return nil
}

// Called when something went wrong. Rolls the store back
func (store *SymbolStore) discardChanges() error {
	if !store.buffering {
		return nil
	}

	store.conn.Exec("ROLLBACK;")
	store.buffering = false
	return nil
}

func (store *SymbolStore) persistSymbol(symbol Symbol) error {
	if symbol.Pattern == "" || symbol.Value1 == "" ||
		!(symbol.Type >= SINGLISH_SYMBOL_VOWEL && symbol.Type <= SINGLISH_SYMBOL_DIACRITIC_SUFFIX) {
		return fmt.Errorf("arguments invalid")
	}

	if len(symbol.Pattern) > SINGLISH_SYMBOL_MAX || len(symbol.Value1) > SINGLISH_SYMBOL_MAX ||
		(symbol.Value2 != "" && len(symbol.Value2) > SINGLISH_SYMBOL_MAX) {
		return fmt.Errorf("length of pattern, value1 or value2 should be less than SINGLISH_SYMBOL_MAX")
	}

	persisted, err := store.alreadyPersisted(symbol)
	if err != nil {
		return err
	}

	if persisted {
		return fmt.Errorf("there is already a match available for '%s => %s'. Duplicate entries are not allowed", symbol.Pattern, symbol.Value1)
	}

	query := "INSERT INTO symbols (type, pattern, value1, value2, value3, tag, match_type, priority, accept_condition) VALUES (?, trim(?), trim(?), trim(?), '', '', ?, 0, 0)"

	ctx, cancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFunc()

	stmt, err := store.conn.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, symbol.Type, symbol.Pattern, symbol.Value1, symbol.Value2, SINGLISH_MATCH_EXACT)
	if err != nil {
		return fmt.Errorf("failed to persist symbol: %s", err.Error())
	}

	return nil
}

func (store *SymbolStore) alreadyPersisted(symbol Symbol) (bool, error) {
	var count int

	err := store.conn.QueryRow("SELECT COUNT(*) FROM symbols WHERE pattern = ? AND type = ?", symbol.Pattern, symbol.Type).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (store *SymbolStore) addMetadata(key string, value string) error {
	_, err := store.conn.Exec("INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)", key, value)
	return err
}

func (store *SymbolStore) setSchemeDetails(sd SchemeDetails) error {
	if len(sd.LangCode) != 2 {
		return fmt.Errorf("language code should be one of ISO 639-1 two letter codes")
	}

	isStable := "1"
	if !sd.IsStable {
		isStable = "0"
	}

	type item struct {
		key   string
		value string
	}

	items := []item{
		{SINGLISH_METADATA_SCHEME_LANGUAGE_CODE, sd.LangCode},
		{SINGLISH_METADATA_SCHEME_IDENTIFIER, sd.Identifier},
		{SINGLISH_METADATA_SCHEME_DISPLAY_NAME, sd.DisplayName},
		{SINGLISH_METADATA_SCHEME_AUTHOR, sd.Author},
		{SINGLISH_METADATA_SCHEME_COMPILED_DATE, sd.CompiledDate},
		{SINGLISH_METADATA_SCHEME_STABLE, isStable},
	}

	for _, o := range items {
		if err := store.addMetadata(o.key, o.value); err != nil {
			return err
		}
	}

	return nil
}

func (store *SymbolStore) schemeDetails() SchemeDetails {
	var sd SchemeDetails

	rows, err := store.conn.Query("SELECT * FROM metadata")
	if err != nil {
		return sd
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			value string
		)
		rows.Scan(&key, &value)
		if key == SINGLISH_METADATA_SCHEME_IDENTIFIER {
			sd.Identifier = value
		} else if key == SINGLISH_METADATA_SCHEME_LANGUAGE_CODE {
			sd.LangCode = value
		} else if key == SINGLISH_METADATA_SCHEME_DISPLAY_NAME {
			sd.DisplayName = value
		} else if key == SINGLISH_METADATA_SCHEME_AUTHOR {
			sd.Author = value
		} else if key == SINGLISH_METADATA_SCHEME_COMPILED_DATE {
			sd.CompiledDate = value
		} else if key == SINGLISH_METADATA_SCHEME_STABLE {
			sd.IsStable = value == "1"
		}
	}

	return sd
}

func (store *SymbolStore) stampVersion() error {
	_, err := store.conn.Exec(fmt.Sprintf("PRAGMA user_version=%d", SINGLISH_SCHEMA_SYMBOLS_VERSION))
	return err
}

func (store *SymbolStore) schemaVersion() (int, error) {
	var version int
	err := store.conn.QueryRow("PRAGMA user_version").Scan(&version)
	return version, err
}

// Close closes the store file
func (store *SymbolStore) Close() error {
	return store.conn.Close()
}

// ExportSymbolStore writes a validated scheme into a symbol store
// file. Rows go in table order inside one transaction, so a failed
// export never leaves a partial store behind.
func ExportSymbolStore(path string, scheme *Scheme) error {
	if err := scheme.Validate(); err != nil {
		return err
	}

	store, err := OpenSymbolStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err = store.startBuffering(); err != nil {
		return err
	}

	classes := []int{
		SINGLISH_SYMBOL_SPECIAL_CONSONANT,
		SINGLISH_SYMBOL_CONSONANT,
		SINGLISH_SYMBOL_VOWEL,
		SINGLISH_SYMBOL_DIACRITIC_SUFFIX,
	}

	for _, class := range classes {
		for _, symbol := range scheme.Symbols(class) {
			if err = store.persistSymbol(symbol); err != nil {
				store.discardChanges()
				return err
			}
		}
	}

	details := scheme.Details
	if details.CompiledDate == "" {
		details.CompiledDate = time.Now().Format("2006-01-02 15:04:05")
	}

	if err = store.setSchemeDetails(details); err != nil {
		store.discardChanges()
		return err
	}

	if err = store.stampVersion(); err != nil {
		store.discardChanges()
		return err
	}

	return store.flushChanges()
}

// LoadSymbolStore reads a scheme back from a store file. Symbols come
// out ordered by rowid, which is insertion order, so priority is the
// priority the exporter saw. The result is validated before use; a
// tampered store fails here, not in Convert.
func LoadSymbolStore(path string) (*Scheme, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("store %s not found", path)
	}

	store, err := OpenSymbolStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	version, err := store.schemaVersion()
	if err != nil {
		return nil, err
	}
	if version != SINGLISH_SCHEMA_SYMBOLS_VERSION {
		return nil, fmt.Errorf("store %s has schema version %d, expected %d", path, version, SINGLISH_SCHEMA_SYMBOLS_VERSION)
	}

	scheme := Scheme{Details: store.schemeDetails()}

	rows, err := store.conn.Query("SELECT type, pattern, value1, value2 FROM symbols ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var symbol Symbol
		if err = rows.Scan(&symbol.Type, &symbol.Pattern, &symbol.Value1, &symbol.Value2); err != nil {
			return nil, err
		}

		switch symbol.Type {
		case SINGLISH_SYMBOL_SPECIAL_CONSONANT:
			scheme.SpecialConsonants = append(scheme.SpecialConsonants, SpecialConsonantRule{symbol.Pattern, symbol.Value1})
		case SINGLISH_SYMBOL_CONSONANT:
			scheme.Consonants = append(scheme.Consonants, ConsonantRule{symbol.Pattern, symbol.Value1})
		case SINGLISH_SYMBOL_VOWEL:
			scheme.Vowels = append(scheme.Vowels, VowelRule{symbol.Pattern, symbol.Value1, symbol.Value2})
		case SINGLISH_SYMBOL_DIACRITIC_SUFFIX:
			scheme.DiacriticSuffixes = append(scheme.DiacriticSuffixes, DiacriticSuffixRule{symbol.Pattern, symbol.Value1})
		default:
			return nil, fmt.Errorf("store %s has a symbol of unknown type %d", path, symbol.Type)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = scheme.Validate(); err != nil {
		return nil, fmt.Errorf("store %s: %w", path, err)
	}

	return &scheme, nil
}
