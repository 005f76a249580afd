package cleanblog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when no post has the requested id.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateTitle is returned when another post already uses the title.
	ErrDuplicateTitle = errors.New("a post with this title already exists")
)

const postColumns = `id, title, subtitle, date, body, author, img_url`

// Store wraps a SQLite database and provides CRUD operations for blog posts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and applies pending migrations.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	// Pragmas go in the DSN so every pooled connection gets them, not just
	// the first one.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// migrateUp runs the embedded migrations. The migrate instance is not closed
// because closing the sqlite driver would close db as well.
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListPosts returns every post in the store's natural order.
func (s *Store) ListPosts(ctx context.Context) ([]BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM blog_post`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns the post with the given id, or ErrNotFound.
func (s *Store) GetPost(ctx context.Context, id int64) (BlogPost, error) {
	var p BlogPost
	err := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM blog_post WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.Author, &p.ImgURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BlogPost{}, ErrNotFound
		}
		return BlogPost{}, err
	}
	return p, nil
}

// CreatePost inserts p and sets p.ID to the assigned id.
func (s *Store) CreatePost(ctx context.Context, p *BlogPost) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO blog_post (title, subtitle, date, body, author, img_url) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, p.Subtitle, p.Date, p.Body, p.Author, p.ImgURL)
	if err != nil {
		return constraintError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// UpdatePost overwrites every column of the row identified by p.ID.
func (s *Store) UpdatePost(ctx context.Context, p BlogPost) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE blog_post SET title = ?, subtitle = ?, date = ?, body = ?, author = ?, img_url = ? WHERE id = ?`,
		p.Title, p.Subtitle, p.Date, p.Body, p.Author, p.ImgURL, p.ID)
	if err != nil {
		return constraintError(err)
	}
	return expectOneRow(res)
}

// DeletePost removes the post with the given id, or returns ErrNotFound.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_post WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	switch n {
	case 1:
		return nil
	case 0:
		return ErrNotFound
	default:
		return fmt.Errorf("expected 1 row to be affected, got %d", n)
	}
}

// constraintError tags a unique-constraint failure with ErrDuplicateTitle,
// keeping the driver error in the chain.
func constraintError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			(code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")) {
			return fmt.Errorf("%w: %w", ErrDuplicateTitle, err)
		}
	}
	return err
}
