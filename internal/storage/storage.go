package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives one rendered report
type Sink interface {
	Write(report string) error
}

// FileSink writes the report to a file, replacing any previous contents
type FileSink struct {
	path string
}

// NewFileSink creates a FileSink for path
func NewFileSink(path string) (*FileSink, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileSink{path: expanded}, nil
}

// Path returns the resolved output path
func (s *FileSink) Path() string {
	return s.path
}

// Write writes report to the file with no trailing newline added
func (s *FileSink) Write(report string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, []byte(report), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return nil
}

// StreamSink writes the report followed by a newline
type StreamSink struct {
	w io.Writer
}

// NewStreamSink creates a StreamSink on w
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// Write prints report and a trailing newline
func (s *StreamSink) Write(report string) error {
	if _, err := fmt.Fprintln(s.w, report); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Open returns a FileSink when path is set, otherwise a StreamSink on stdout
func Open(path string, stdout io.Writer) (Sink, error) {
	if path == "" {
		return NewStreamSink(stdout), nil
	}
	return NewFileSink(path)
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
