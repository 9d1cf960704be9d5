package stats

import (
	"database/sql"
	"path/filepath"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"

	"github.com/selebrow/fetcher/pkg/models"
)

const dbFileName = "observations.db"

type persister struct {
	db *sql.DB
}

func openPersister(dir string) (*persister, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open statistics database")
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS observed_domains (
			domain TEXT PRIMARY KEY,
			last_seen INTEGER,
			user_interaction INTEGER,
			prevalent INTEGER)`,
		`CREATE TABLE IF NOT EXISTS subresource_under_top_frame (
			subresource TEXT NOT NULL,
			top_frame TEXT NOT NULL,
			PRIMARY KEY (subresource, top_frame))`,
		"PRAGMA journal_mode=WAL",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "failed to initialize statistics database")
		}
	}
	return &persister{db: db}, nil
}

func (p *persister) load() (map[models.RegistrableDomain]*Record, error) {
	rows, err := p.db.Query("SELECT domain, last_seen, user_interaction, prevalent FROM observed_domains")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[models.RegistrableDomain]*Record)
	for rows.Next() {
		var (
			domain          string
			lastSeen, inter int64
			prevalent       bool
		)
		if err := rows.Scan(&domain, &lastSeen, &inter, &prevalent); err != nil {
			return nil, err
		}
		r := newRecord(models.RegistrableDomain(domain))
		r.LastSeen = time.UnixMilli(lastSeen)
		if inter != 0 {
			r.MostRecentUserInteraction = time.UnixMilli(inter)
		}
		r.Prevalent = prevalent
		records[r.Domain] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rel, err := p.db.Query("SELECT subresource, top_frame FROM subresource_under_top_frame")
	if err != nil {
		return nil, err
	}
	defer rel.Close()
	for rel.Next() {
		var sub, top string
		if err := rel.Scan(&sub, &top); err != nil {
			return nil, err
		}
		if r, ok := records[models.RegistrableDomain(sub)]; ok {
			r.SubresourceUnderTopFrames[models.RegistrableDomain(top)] = struct{}{}
		}
	}
	return records, rel.Err()
}

func (p *persister) save(r *Record) error {
	var inter int64
	if !r.MostRecentUserInteraction.IsZero() {
		inter = r.MostRecentUserInteraction.UnixMilli()
	}
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("INSERT OR REPLACE INTO observed_domains (domain, last_seen, user_interaction, prevalent) VALUES (?, ?, ?, ?)",
		r.Domain.String(), r.LastSeen.UnixMilli(), inter, r.Prevalent); err != nil {
		return err
	}
	for top := range r.SubresourceUnderTopFrames {
		if _, err := tx.Exec("INSERT OR IGNORE INTO subresource_under_top_frame (subresource, top_frame) VALUES (?, ?)",
			r.Domain.String(), top.String()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (p *persister) remove(domain models.RegistrableDomain) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM observed_domains WHERE domain = ?", domain.String()); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM subresource_under_top_frame WHERE subresource = ? OR top_frame = ?",
		domain.String(), domain.String()); err != nil {
		return err
	}
	return tx.Commit()
}

func (p *persister) close() error {
	return p.db.Close()
}
