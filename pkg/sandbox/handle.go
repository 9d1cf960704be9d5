package sandbox

import (
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyConsumed = errors.New("permission handle already consumed")
	ErrOutsideRoots    = errors.New("path is outside of permitted directories")
)

// Handle is a one-time-consumable permission to use a filesystem path.
// A nil Handle grants nothing and restricts nothing.
type Handle struct {
	path     string
	consumed atomic.Bool
}

func (h *Handle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// Consume claims the permission. Only the first call succeeds.
func (h *Handle) Consume() error {
	if h == nil {
		return nil
	}
	if !h.consumed.CompareAndSwap(false, true) {
		return errors.Wrap(ErrAlreadyConsumed, h.path)
	}
	return nil
}

func (h *Handle) IsConsumed() bool {
	return h != nil && h.consumed.Load()
}

// Issuer hands out handles for paths under a fixed set of root directories.
// An issuer without roots permits any absolute path.
type Issuer struct {
	roots []string
}

func NewIssuer(roots ...string) *Issuer {
	var cleaned []string
	for _, r := range roots {
		if r == "" {
			continue
		}
		if abs, err := filepath.Abs(r); err == nil {
			cleaned = append(cleaned, abs)
		}
	}
	return &Issuer{roots: cleaned}
}

func (i *Issuer) Issue(path string) (*Handle, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid path %s", path)
	}
	if !i.permits(abs) {
		return nil, errors.Wrap(ErrOutsideRoots, abs)
	}
	return &Handle{path: abs}, nil
}

func (i *Issuer) permits(abs string) bool {
	if len(i.roots) == 0 {
		return true
	}
	for _, r := range i.roots {
		if abs == r || strings.HasPrefix(abs, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
