package library

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/arcanaland/bingo/internal/card"
)

// Ext is the extension of card files
const Ext = ".toml"

var (
	ErrExists   = errors.New("card already exists")
	ErrNotFound = errors.New("card not found")
	ErrBadName  = errors.New("invalid card name")
)

// File is the on-disk form of a stored card
type File struct {
	ID      string     `toml:"id"`
	Created time.Time  `toml:"created"`
	Grid    [][]string `toml:"grid"`
}

// Stored is a card together with its library metadata
type Stored struct {
	Name    string
	ID      string
	Created time.Time
	Path    string
	Card    *card.Card
}

// NewFile wraps c with a fresh ID and creation time
func NewFile(c *card.Card) File {
	return File{
		ID:      uuid.NewString(),
		Created: time.Now().UTC().Truncate(time.Second),
		Grid:    c.Rows(),
	}
}

// DecodeFile reads a card file without checking the card rules
func DecodeFile(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// Load loads and checks a card file
func Load(path string) (*Stored, error) {
	f, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	c, err := card.ParseRows(f.Grid)
	if err != nil {
		return nil, fmt.Errorf("invalid card in %s: %w", filepath.Base(path), err)
	}

	return &Stored{
		Name:    strings.TrimSuffix(filepath.Base(path), Ext),
		ID:      f.ID,
		Created: f.Created,
		Path:    path,
		Card:    c,
	}, nil
}

// Save writes c into dir as <name>.toml. An empty name uses the card's ID.
// Existing cards are never overwritten.
func Save(dir string, c *card.Card, name string) (*Stored, error) {
	f := NewFile(c)
	if name == "" {
		name = f.ID
	}
	if err := checkName(name); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating card library: %w", err)
	}

	path := filepath.Join(dir, name+Ext)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrExists, name)
		}
		return nil, fmt.Errorf("error creating card file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return nil, fmt.Errorf("error encoding card: %w", err)
	}

	slog.Debug("card saved", "name", name, "id", f.ID, "path", path)
	return &Stored{
		Name:    name,
		ID:      f.ID,
		Created: f.Created,
		Path:    path,
		Card:    c,
	}, nil
}

// List returns the valid cards in dir sorted by name. A missing directory
// holds no cards.
func List(dir string) ([]*Stored, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading card library: %w", err)
	}

	var cards []*Stored
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Not a valid card, skip
			slog.Debug("skipping card file", "file", entry.Name(), "error", err)
			continue
		}
		cards = append(cards, s)
	}
	return cards, nil
}

// Resolve returns the path to a card, either by name in the library or as a
// path to a card file
func Resolve(dir, nameOrPath string) (string, error) {
	if checkName(nameOrPath) == nil {
		for _, candidate := range []string{
			filepath.Join(dir, nameOrPath+Ext),
			filepath.Join(dir, nameOrPath),
		} {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
		return nameOrPath, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, nameOrPath)
}

// Remove deletes the named card from dir
func Remove(dir, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	path := filepath.Join(dir, name+Ext)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("error removing card: %w", err)
	}
	slog.Debug("card removed", "name", name, "path", path)
	return nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}
