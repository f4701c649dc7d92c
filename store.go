package solestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kmwangi/solestore/catalog"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding the two catalog tables: curated
// products (authoritative) and legacy catalog images. It implements
// catalog.CuratedSource and catalog.LegacySource.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent catalog reads during admin writes; busy_timeout
	// so writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS curated_products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price INTEGER NOT NULL,
    image TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT 'Men',
    tags TEXT NOT NULL DEFAULT ',,',
    featured INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_curated_products_category ON curated_products(category);

CREATE TABLE IF NOT EXISTS catalog_images (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL DEFAULT '',
    filename TEXT NOT NULL,
    url TEXT NOT NULL,
    storage_path TEXT NOT NULL,
    thumbnail_url TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    price INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    uploaded_by TEXT NOT NULL DEFAULT '',
    file_size INTEGER NOT NULL DEFAULT 0,
    mime_type TEXT NOT NULL DEFAULT '',
    width INTEGER NOT NULL DEFAULT 0,
    height INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_catalog_images_category ON catalog_images(category);
`)
	return err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// --- Curated products ---

const curatedColumns = `id, name, description, price, image, category, subcategory, gender, tags, featured`

func scanCurated(row interface{ Scan(...any) error }) (catalog.Product, error) {
	var p catalog.Product
	var cat, gender, tags, subcategory string
	var featured int
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &cat, &subcategory, &gender, &tags, &featured)
	if err != nil {
		return catalog.Product{}, err
	}
	p.Category = catalog.Category(cat)
	p.Gender = catalog.Gender(gender)
	p.Tags = ParseTags(tags)
	if subcategory != "" {
		p.Tags = append([]string{subcategory}, p.Tags...)
	}
	p.Featured = featured == 1
	return p, nil
}

// CuratedByCategory returns the authoritative products for a category,
// featured first.
func (s *Store) CuratedByCategory(cat catalog.Category) ([]catalog.Product, error) {
	rows, err := s.db.Query(`SELECT `+curatedColumns+` FROM curated_products WHERE category = ? ORDER BY featured DESC, created_at DESC, id`, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		p, err := scanCurated(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetCuratedProduct returns one curated product by id.
func (s *Store) GetCuratedProduct(id string) (catalog.Product, error) {
	row := s.db.QueryRow(`SELECT `+curatedColumns+` FROM curated_products WHERE id = ?`, id)
	return scanCurated(row)
}

// SaveCuratedProduct upserts a curated product, preserving created_at on
// update. Tags are normalized to lowercase; subcategory is stored in its
// own column and surfaced back as the leading tag.
func (s *Store) SaveCuratedProduct(p catalog.Product, subcategory string) error {
	if p.ID == "" {
		return fmt.Errorf("store: curated product id is required")
	}
	featured := 0
	if p.Featured {
		featured = 1
	}
	ts := now()
	_, err := s.db.Exec(`
INSERT INTO curated_products (id, name, description, price, image, category, subcategory, gender, tags, featured, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name=excluded.name, description=excluded.description, price=excluded.price,
    image=excluded.image, category=excluded.category, subcategory=excluded.subcategory,
    gender=excluded.gender, tags=excluded.tags, featured=excluded.featured,
    updated_at=excluded.updated_at`,
		p.ID, p.Name, p.Description, p.Price, p.Image, string(p.Category), subcategory,
		string(p.Gender), encodeTags(p.Tags), featured, ts, ts)
	return err
}

// DeleteCuratedProduct removes a curated product by id.
func (s *Store) DeleteCuratedProduct(id string) error {
	_, err := s.db.Exec(`DELETE FROM curated_products WHERE id = ?`, id)
	return err
}

// --- Legacy catalog images ---

const imageColumns = `id, category, subcategory, filename, url, storage_path, thumbnail_url, name, price, description, uploaded_by, file_size, mime_type, width, height, created_at, updated_at`

func scanImage(row interface{ Scan(...any) error }) (catalog.StoredImage, error) {
	var rec catalog.StoredImage
	var cat string
	err := row.Scan(&rec.ID, &cat, &rec.Subcategory, &rec.Filename, &rec.URL, &rec.StoragePath,
		&rec.ThumbnailURL, &rec.Name, &rec.Price, &rec.Description, &rec.UploadedBy,
		&rec.FileSize, &rec.MimeType, &rec.Width, &rec.Height, &rec.CreatedAt, &rec.UpdatedAt)
	rec.Category = catalog.Category(cat)
	return rec, err
}

// ImagesByCategory returns legacy image records for a category, newest
// first.
func (s *Store) ImagesByCategory(cat catalog.Category) ([]catalog.StoredImage, error) {
	rows, err := s.db.Query(`SELECT `+imageColumns+` FROM catalog_images WHERE category = ? ORDER BY created_at DESC, id DESC`, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []catalog.StoredImage
	for rows.Next() {
		rec, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListImages returns every legacy image record, newest first.
func (s *Store) ListImages() ([]catalog.StoredImage, error) {
	rows, err := s.db.Query(`SELECT ` + imageColumns + ` FROM catalog_images ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []catalog.StoredImage
	for rows.Next() {
		rec, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetImage returns one legacy image record by id.
func (s *Store) GetImage(id int64) (catalog.StoredImage, error) {
	row := s.db.QueryRow(`SELECT `+imageColumns+` FROM catalog_images WHERE id = ?`, id)
	return scanImage(row)
}

// SaveImage inserts a new legacy image record and returns its id.
func (s *Store) SaveImage(rec catalog.StoredImage) (int64, error) {
	ts := now()
	res, err := s.db.Exec(`
INSERT INTO catalog_images (category, subcategory, filename, url, storage_path, thumbnail_url, name, price, description, uploaded_by, file_size, mime_type, width, height, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(rec.Category), rec.Subcategory, rec.Filename, rec.URL, rec.StoragePath,
		rec.ThumbnailURL, rec.Name, rec.Price, rec.Description, rec.UploadedBy,
		rec.FileSize, rec.MimeType, rec.Width, rec.Height, ts, ts)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateImage rewrites the admin-editable override fields of a record.
func (s *Store) UpdateImage(id int64, name string, price int, description, subcategory string) error {
	_, err := s.db.Exec(`UPDATE catalog_images SET name = ?, price = ?, description = ?, subcategory = ?, updated_at = ? WHERE id = ?`,
		name, price, description, subcategory, now(), id)
	return err
}

// DeleteImage removes a legacy image record by id.
func (s *Store) DeleteImage(id int64) error {
	_, err := s.db.Exec(`DELETE FROM catalog_images WHERE id = ?`, id)
	return err
}

// --- Tag encoding ---

// encodeTags stores tags as ",a,b," so a single instr() can match whole
// tags in SQL.
func encodeTags(tags []string) string {
	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			normalized = append(normalized, t)
		}
	}
	return "," + strings.Join(normalized, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",boots,sale,")
// into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(tagString, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
