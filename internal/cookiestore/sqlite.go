package cookiestore

import (
	"database/sql"
	"net/http"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/fetcher/pkg/models"
)

const dbFileName = "cookies.db"

// SQLiteStore persists cookies of a non-ephemeral session. Session cookies
// (no expiry) are kept in the database too and wiped by Open of the next run.
type SQLiteStore struct {
	db         *sql.DB
	writeMutex sync.Mutex
	now        func() time.Time
	l          *zap.SugaredLogger
}

func OpenSQLiteStore(dir string, l *zap.SugaredLogger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open cookie database")
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cookies (
			domain TEXT NOT NULL,
			path TEXT NOT NULL,
			name TEXT NOT NULL,
			value TEXT,
			host_only INTEGER,
			expires INTEGER,
			secure INTEGER,
			http_only INTEGER,
			same_site INTEGER,
			registrable TEXT,
			PRIMARY KEY (domain, path, name))`,
		"CREATE INDEX IF NOT EXISTS cookies_registrable ON cookies (registrable)",
		"PRAGMA journal_mode=WAL",
		"DELETE FROM cookies WHERE expires = 0",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "failed to initialize cookie database")
		}
	}
	return &SQLiteStore{db: db, now: time.Now, l: l}, nil
}

func (s *SQLiteStore) SetCookies(u *url.URL, cookies []*http.Cookie) {
	now := s.now()
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	for _, c := range cookies {
		sc, ok := fromSetCookie(u, c, now)
		if !ok {
			continue
		}
		var err error
		if sc.Expired(now) {
			_, err = s.db.Exec("DELETE FROM cookies WHERE domain = ? AND path = ? AND name = ?",
				sc.Domain, sc.Path, sc.Name)
		} else {
			err = s.insert(sc)
		}
		if err != nil {
			s.l.Warnw("failed to store cookie", zap.String("name", sc.Name), zap.String("domain", sc.Domain), zap.Error(err))
		}
	}
}

func (s *SQLiteStore) insert(c *Cookie) error {
	var expires int64
	if c.Persistent() {
		expires = c.Expires.UnixMilli()
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO cookies
		(domain, path, name, value, host_only, expires, secure, http_only, same_site, registrable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Domain, c.Path, c.Name, c.Value, c.HostOnly, expires, c.Secure, c.HTTPOnly, int(c.SameSite),
		c.RegistrableDomain().String())
	return err
}

func (s *SQLiteStore) Cookies(u *url.URL) []*http.Cookie {
	all, err := s.query("SELECT domain, path, name, value, host_only, expires, secure, http_only, same_site FROM cookies")
	if err != nil {
		s.l.Warnw("failed to load cookies", zap.String("url", u.Redacted()), zap.Error(err))
		return nil
	}
	now := s.now()
	var matched []*Cookie
	for _, c := range all {
		if c.matches(u, now) {
			matched = append(matched, c)
		}
	}
	return sortedCookies(matched)
}

func (s *SQLiteStore) query(q string, args ...any) ([]*Cookie, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Cookie
	for rows.Next() {
		var (
			c        Cookie
			expires  int64
			sameSite int
		)
		if err := rows.Scan(&c.Domain, &c.Path, &c.Name, &c.Value, &c.HostOnly, &expires,
			&c.Secure, &c.HTTPOnly, &sameSite); err != nil {
			return nil, err
		}
		if expires != 0 {
			c.Expires = time.UnixMilli(expires)
		}
		c.SameSite = http.SameSite(sameSite)
		res = append(res, &c)
	}
	return res, rows.Err()
}

func (s *SQLiteStore) DeleteCookiesForDomains(domains []models.RegistrableDomain) ([]models.RegistrableDomain, error) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	removed := make(map[models.RegistrableDomain]struct{})
	for _, d := range domains {
		res, err := s.db.Exec("DELETE FROM cookies WHERE registrable = ?", d.String())
		if err != nil {
			return domainList(removed), errors.Wrapf(err, "failed to delete cookies of %s", d)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			removed[d] = struct{}{}
		}
	}
	return domainList(removed), nil
}

func (s *SQLiteStore) DeleteAllCookies() error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("DELETE FROM cookies")
	return err
}

func (s *SQLiteStore) Domains() ([]models.RegistrableDomain, error) {
	rows, err := s.db.Query("SELECT DISTINCT registrable FROM cookies ORDER BY registrable")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.RegistrableDomain
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		res = append(res, models.RegistrableDomain(d))
	}
	return res, rows.Err()
}

func (s *SQLiteStore) SetSameSiteStrict(domain models.RegistrableDomain) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("UPDATE cookies SET same_site = ? WHERE registrable = ?",
		int(http.SameSiteStrictMode), domain.String())
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
