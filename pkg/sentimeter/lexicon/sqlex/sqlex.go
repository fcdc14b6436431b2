// Package sqlex compiles lexicons into a single SQLite file and loads
// them back. The compiled form exists so large curated lexicons ship as
// one artifact; at runtime the whole lexicon is read once into memory
// and the database handle is closed, keeping lookups off the disk.
package sqlex

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon/memlex"
)

const schema = `
CREATE TABLE IF NOT EXISTS polarity (
	word TEXT PRIMARY KEY,
	positive INTEGER NOT NULL,
	negative INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS emotions (
	word TEXT PRIMARY KEY,
	anger INTEGER NOT NULL DEFAULT 0,
	anticipation INTEGER NOT NULL DEFAULT 0,
	disgust INTEGER NOT NULL DEFAULT 0,
	fear INTEGER NOT NULL DEFAULT 0,
	joy INTEGER NOT NULL DEFAULT 0,
	negative INTEGER NOT NULL DEFAULT 0,
	positive INTEGER NOT NULL DEFAULT 0,
	sadness INTEGER NOT NULL DEFAULT 0,
	surprise INTEGER NOT NULL DEFAULT 0,
	trust INTEGER NOT NULL DEFAULT 0
);
`

// Write compiles the given lexicon tables into a SQLite file at path,
// replacing any previous contents.
func Write(ctx context.Context, path string, polarity map[string]lexicon.Polarity, emotions map[string]lexicon.EmotionVector) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init lexicon schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM polarity"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM emotions"); err != nil {
		return err
	}

	for word, p := range polarity {
		if !p.Valid() {
			return fmt.Errorf("%w: polarity of %q must be exactly one of positive/negative", internalerr.ErrInvalidLexicon, word)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO polarity (word, positive, negative) VALUES (?, ?, ?)",
			word, boolToInt(p.Positive), boolToInt(p.Negative)); err != nil {
			return err
		}
	}

	for word, v := range emotions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO emotions (word, anger, anticipation, disgust, fear, joy, negative, positive, sadness, surprise, trust)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			word, v.Anger, v.Anticipation, v.Disgust, v.Fear, v.Joy,
			v.Negative, v.Positive, v.Sadness, v.Surprise, v.Trust); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Open loads a compiled lexicon file into an immutable in-memory store.
// The database is only touched during this call. A missing file fails
// with internalerr.ErrFileNotFound.
func Open(ctx context.Context, path string) (*memlex.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrFileNotFound, path)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	polarity, err := readPolarity(ctx, db)
	if err != nil {
		return nil, err
	}
	emotions, err := readEmotions(ctx, db)
	if err != nil {
		return nil, err
	}

	return memlex.New(polarity, emotions)
}

func readPolarity(ctx context.Context, db *sql.DB) (map[string]lexicon.Polarity, error) {
	rows, err := db.QueryContext(ctx, "SELECT word, positive, negative FROM polarity")
	if err != nil {
		return nil, fmt.Errorf("read polarity lexicon: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]lexicon.Polarity)
	for rows.Next() {
		var word string
		var pos, neg int
		if err := rows.Scan(&word, &pos, &neg); err != nil {
			return nil, err
		}
		entries[word] = lexicon.Polarity{Positive: pos != 0, Negative: neg != 0}
	}
	return entries, rows.Err()
}

func readEmotions(ctx context.Context, db *sql.DB) (map[string]lexicon.EmotionVector, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT word, anger, anticipation, disgust, fear, joy, negative, positive, sadness, surprise, trust
		 FROM emotions`)
	if err != nil {
		return nil, fmt.Errorf("read emotion lexicon: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]lexicon.EmotionVector)
	for rows.Next() {
		var word string
		var v lexicon.EmotionVector
		if err := rows.Scan(&word, &v.Anger, &v.Anticipation, &v.Disgust, &v.Fear, &v.Joy,
			&v.Negative, &v.Positive, &v.Sadness, &v.Surprise, &v.Trust); err != nil {
			return nil, err
		}
		entries[word] = v
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
