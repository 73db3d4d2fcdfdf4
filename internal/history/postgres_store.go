package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore is the deployment option for runs that cannot keep local
// files (e.g. function invocations with ephemeral disks).
type PostgresStore struct {
	db        *sql.DB
	retention time.Duration
	now       func() time.Time
}

func NewPostgresStore(dsn string, retention time.Duration) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	store := &PostgresStore{db: db, retention: retention, now: time.Now}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS published_posts (
		id SERIAL PRIMARY KEY,
		original_title TEXT NOT NULL,
		link TEXT UNIQUE NOT NULL,
		post_content TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_published_posts_created_at ON published_posts(created_at);
	`
	_, err := ps.db.Exec(schema)
	return err
}

func (ps *PostgresStore) Load(ctx context.Context) ([]Entry, error) {
	cutoff := ps.now().Add(-ps.retention)
	rows, err := ps.db.QueryContext(ctx,
		`SELECT original_title, link, created_at, COALESCE(post_content, '')
		 FROM published_posts WHERE created_at > $1 ORDER BY created_at`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.OriginalTitle, &e.Link, &e.CreatedAt, &e.PostContent); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save purges expired rows and upserts the window in one transaction, the
// relational equivalent of the file store's purge-then-write.
func (ps *PostgresStore) Save(ctx context.Context, entries []Entry) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history save: %w", err)
	}
	defer tx.Rollback()

	cutoff := ps.now().Add(-ps.retention)
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM published_posts WHERE created_at <= $1`, cutoff); err != nil {
		return fmt.Errorf("purge history: %w", err)
	}

	for _, e := range Purge(entries, ps.retention, ps.now()) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO published_posts (original_title, link, post_content, created_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (link) DO NOTHING`,
			e.OriginalTitle, e.Link, e.PostContent, e.CreatedAt); err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}
	}

	return tx.Commit()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
