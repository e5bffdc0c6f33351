package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/store"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS words (
		category TEXT NOT NULL,
		word TEXT NOT NULL,
		record TEXT NOT NULL,
		PRIMARY KEY (category, word)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_words_category ON words (category)`,
}

// Store persists the word collection in SQLite, one row per word with the
// record serialized as JSON. Save replaces the whole table in a transaction,
// matching the full-collection unit of transfer.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

var _ store.Store = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	log := logger.Default().WithPrefix("store")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Info("opening database: %s", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	db.SetMaxOpenConns(1) // SQLite best practice for single writer

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			log.Error("failed to apply schema: %v", err)
			db.Close()
			return nil, err
		}
	}

	log.Info("database ready")
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (models.Collection, error) {
	log := logger.FromContext(ctx).WithPrefix("store")

	query, args, err := sqlBuilder.
		Select("category", "record").
		From("words").
		OrderBy("category", "rowid").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query words: %v", err)
		return nil, err
	}
	defer rows.Close()

	collection := models.Collection{}
	for rows.Next() {
		var category, raw string
		if err := rows.Scan(&category, &raw); err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		var rec models.WordRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			log.Error("failed to decode word record: %v", err)
			return nil, err
		}
		collection[category] = append(collection[category], rec)
	}
	log.Debug("loaded %d words across %d categories", collection.TotalWords(), len(collection))
	return collection, rows.Err()
}

func (s *Store) Save(ctx context.Context, collection models.Collection) error {
	log := logger.FromContext(ctx).WithPrefix("store")
	log.Debug("saving %d words across %d categories", collection.TotalWords(), len(collection))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}

	if err := s.replaceAll(ctx, tx, collection); err != nil {
		_ = tx.Rollback()
		log.Error("failed to save collection: %v", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	return nil
}

func (s *Store) replaceAll(ctx context.Context, tx *sql.Tx, collection models.Collection) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return err
	}
	for category, words := range collection {
		for _, rec := range words {
			raw, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			query, args, err := sqlBuilder.
				Insert("words").
				Columns("category", "word", "record").
				Values(category, rec.Word, string(raw)).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
	}
	return nil
}
