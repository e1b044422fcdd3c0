package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Sink accepts a generated document for delivery. Implementations decide
// where the text goes (file, clipboard, stdout); generators never touch
// I/O themselves.
type Sink interface {
	Deliver(filename, content string) error
}

// FileSink writes delivered documents into a directory.
type FileSink struct {
	Dir    string
	Logger *logrus.Logger
}

// Deliver writes content to Dir/filename, creating the directory if needed.
func (s *FileSink) Deliver(filename, content string) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"path":  path,
			"bytes": len(content),
		}).Info("Export written")
	}
	return nil
}
