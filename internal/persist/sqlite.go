package persist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"evocoffee/internal/core"
	"evocoffee/internal/store"
)

// SQLiteStore persists the document in normalized tables. Writes replace
// the whole content transactionally, preserving the document contract.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context) (store.Document, error) {
	var doc store.Document

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, buyer, amount, notes FROM purchases ORDER BY position`)
	if err != nil {
		return doc, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p store.PurchaseRecord
		if err := rows.Scan(&p.ID, &p.Date, &p.Buyer, &p.Amount, &p.Notes); err != nil {
			return doc, fmt.Errorf("scan purchase: %w", err)
		}
		doc.Purchases = append(doc.Purchases, p)
	}
	if err := rows.Err(); err != nil {
		return doc, fmt.Errorf("iterate purchases: %w", err)
	}

	logRows, err := s.db.QueryContext(ctx,
		`SELECT id, date, capsules, caps_lor, caps_illy, caps_other, milk, brand
		 FROM inventory_log ORDER BY position`)
	if err != nil {
		return doc, fmt.Errorf("query inventory log: %w", err)
	}
	defer logRows.Close()
	for logRows.Next() {
		var (
			rec            store.LogRecord
			lor, illy, oth float64
		)
		if err := logRows.Scan(&rec.ID, &rec.Date, &rec.Capsules, &lor, &illy, &oth, &rec.Milk, &rec.Brand); err != nil {
			return doc, fmt.Errorf("scan inventory log entry: %w", err)
		}
		rec.CapsLOR, rec.CapsIlly, rec.CapsOther = &lor, &illy, &oth
		doc.InventoryLog = append(doc.InventoryLog, rec)
	}
	if err := logRows.Err(); err != nil {
		return doc, fmt.Errorf("iterate inventory log: %w", err)
	}

	var (
		snap      store.SnapshotRecord
		updatedAt sql.NullString
		brands    core.BrandCounts
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT beans_g, milk_l, updated_at, reason, brand_lor, brand_illy, brand_other
		 FROM inventory WHERE id = 1`).
		Scan(&snap.CapsuleCount, &snap.MilkLiters, &updatedAt, &snap.Reason,
			&brands.LOR, &brands.Illy, &brands.Other)
	switch {
	case err == sql.ErrNoRows:
		// Nothing stored yet; the zero document normalizes to defaults.
	case err != nil:
		return doc, fmt.Errorf("query inventory snapshot: %w", err)
	default:
		if updatedAt.Valid {
			snap.UpdatedAt = &updatedAt.String
		}
		snap.Brands = &brands
		doc.Inventory = &snap
	}

	return doc, nil
}

func (s *SQLiteStore) Write(ctx context.Context, doc store.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"purchases", "inventory_log", "inventory"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, p := range doc.Purchases {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO purchases (position, id, date, buyer, amount, notes) VALUES (?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.Date, p.Buyer, p.Amount, p.Notes); err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}
	}
	for i, rec := range doc.InventoryLog {
		lor := valueOrZero(rec.CapsLOR)
		illy := valueOrZero(rec.CapsIlly)
		oth := valueOrZero(rec.CapsOther)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_log (position, id, date, capsules, caps_lor, caps_illy, caps_other, milk, brand)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, rec.ID, rec.Date, rec.Capsules, lor, illy, oth, rec.Milk, rec.Brand); err != nil {
			return fmt.Errorf("insert inventory log entry: %w", err)
		}
	}

	if snap := doc.Inventory; snap != nil {
		var updatedAt any
		if snap.UpdatedAt != nil {
			updatedAt = *snap.UpdatedAt
		}
		brands := core.BrandCounts{}
		if snap.Brands != nil {
			brands = *snap.Brands
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory (id, beans_g, milk_l, updated_at, reason, brand_lor, brand_illy, brand_other)
			 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
			snap.CapsuleCount, snap.MilkLiters, updatedAt, snap.Reason,
			brands.LOR, brands.Illy, brands.Other); err != nil {
			return fmt.Errorf("insert inventory snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func valueOrZero(v *float64) float64 {
	if v != nil {
		return *v
	}
	return 0
}
