package farm

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// LoadCatalog reads a catalog from a prices file. A missing or malformed
// file is an empty catalog, not an error: working without price data is a
// normal degraded mode.
func LoadCatalog(path string) *Catalog {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("cannot open prices file %q, starting empty: %v", path, err)
		}
		return NewCatalog(nil)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// SaveCatalog writes the catalog to a prices file, creating the parent
// directory when needed.
func SaveCatalog(path string, c *Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for prices file %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create prices file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeCatalog(f, c)
}

// LoadSession reads the session command stream. A missing file is a fresh
// default session.
func LoadSession(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSession(), nil
		}
		return nil, fmt.Errorf("could not open session file %q: %w", path, err)
	}
	defer f.Close()

	session, err := DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode session file %q: %w", path, err)
	}
	return session, nil
}

// SaveSession writes the session back in canonical form.
func SaveSession(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for session file %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create session file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeSession(f, s)
}

