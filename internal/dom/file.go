package dom

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var ErrEmptyPath = errors.New("path is required")

// File is a document backed by an HTML file on disk. It re-parses the file
// whenever its size or modification time changes, so a page dumped
// incrementally by another process can be watched.
type File struct {
	path   string
	logger zerolog.Logger

	mu      sync.Mutex
	modTime time.Time
	size    int64
	current Document
	reloads int
}

// OpenFile parses path once; the initial read must succeed.
func OpenFile(path string, logger zerolog.Logger) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	f := &File{path: path, logger: logger}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	doc, err := f.parse()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.current = doc
	f.modTime = info.ModTime()
	f.size = info.Size()
	return f, nil
}

func (f *File) parse() (Document, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Reloads counts how many times the file was parsed again after opening.
func (f *File) Reloads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reloads
}

// Snapshot returns the latest successfully parsed content.
func (f *File) Snapshot() Document {
	f.mu.Lock()
	defer f.mu.Unlock()

	info, err := os.Stat(f.path)
	if err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("stat failed, keeping previous snapshot")
		return f.current
	}
	if info.ModTime().Equal(f.modTime) && info.Size() == f.size {
		return f.current
	}

	doc, err := f.parse()
	if err != nil {
		f.logger.Warn().Err(err).Str("path", f.path).Msg("reparse failed, keeping previous snapshot")
		return f.current
	}
	f.current = doc
	f.modTime = info.ModTime()
	f.size = info.Size()
	f.reloads++
	f.logger.Debug().Str("path", f.path).Int64("size", f.size).Int("reloads", f.reloads).Msg("document reloaded")
	return f.current
}

func (f *File) Body() Node {
	return f.Snapshot().Body()
}

func (f *File) Find(selector string) []Node {
	return f.Snapshot().Find(selector)
}

func (f *File) FindFirst(selector string) Node {
	return f.Snapshot().FindFirst(selector)
}
