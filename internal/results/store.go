// Package results persists analysis output as timestamped text files.
package results

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/thruflo/revloop/internal/loop"
)

// ErrPersistence wraps every failure to write a result file.
var ErrPersistence = errors.New("failed to save results")

// Kind identifies what a result file holds.
type Kind string

const (
	KindRange  Kind = "range"
	KindSingle Kind = "single"
)

const (
	rangePrefix  = "loop_analysis_"
	singlePrefix = "single_number_analysis_"

	fileStamp   = "20060102_150405"
	headerStamp = "2006-01-02 15:04:05"
)

var rule = strings.Repeat("=", 50)

// Record describes a saved result file.
type Record struct {
	Name    string
	Path    string
	Kind    Kind
	ModTime time.Time
}

// Store writes result files into a directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Dir returns the directory results are written to.
func (s *Store) Dir() string {
	return s.dir
}

// SaveRange writes a range summary and returns the absolute path of the file.
func (s *Store) SaveRange(start, end int64, summary string) (string, error) {
	now := s.now()
	name := fmt.Sprintf("%s%d_to_%d_%s.txt", rangePrefix, start, end, now.Format(fileStamp))

	var sb strings.Builder
	sb.WriteString("Number Loop Analysis Results\n")
	fmt.Fprintf(&sb, "Generated on: %s\n", now.Format(headerStamp))
	sb.WriteString(rule + "\n\n")
	sb.WriteString(strings.TrimRight(summary, "\n"))
	sb.WriteString("\n\n" + rule + "\n")
	sb.WriteString("Analysis completed successfully.\n")

	return s.write(name, sb.String())
}

// SaveSingle writes a single-number transcript and its final loop and returns
// the absolute path of the file.
func (s *Store) SaveSingle(number int64, transcript string, canonical loop.Loop) (string, error) {
	now := s.now()
	name := fmt.Sprintf("%s%d_%s.txt", singlePrefix, number, now.Format(fileStamp))

	var sb strings.Builder
	sb.WriteString("Single Number Loop Analysis\n")
	fmt.Fprintf(&sb, "Generated on: %s\n", now.Format(headerStamp))
	sb.WriteString(rule + "\n\n")
	sb.WriteString(transcript)
	sb.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&sb, "Final canonical loop: %s\n", canonical)
	sb.WriteString("Analysis completed successfully.\n")

	return s.write(name, sb.String())
}

func (s *Store) write(name, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create results directory: %w", ErrPersistence, err)
	}

	path, err := filepath.Abs(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: resolve path: %w", ErrPersistence, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrPersistence, name, err)
	}
	return path, nil
}

// List returns the saved result files, newest first. A missing directory
// yields an empty list.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	records := []Record{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		kind, ok := kindOf(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue // Removed between ReadDir and Info
		}

		records = append(records, Record{
			Name:    entry.Name(),
			Path:    filepath.Join(s.dir, entry.Name()),
			Kind:    kind,
			ModTime: info.ModTime(),
		})
	}

	slices.SortFunc(records, func(a, b Record) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(b.Name, a.Name)
	})
	return records, nil
}

func kindOf(name string) (Kind, bool) {
	switch {
	case strings.HasPrefix(name, rangePrefix):
		return KindRange, true
	case strings.HasPrefix(name, singlePrefix):
		return KindSingle, true
	}
	return "", false
}
