package buffer

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Load replaces the buffer content with everything read from r. Carriage
// returns are dropped; no other byte is changed. The gap is left after the
// content. On error the buffer is unchanged.
func (b *GapBuffer) Load(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	text := bytes.ReplaceAll(raw, []byte{'\r'}, nil)
	if len(text) > len(b.data)-b.gapSize {
		return fmt.Errorf("loading %d bytes into %d: %w", len(text), len(b.data), ErrCapacityExceeded)
	}

	n := copy(b.data, text)
	clear(b.data[n:])
	b.length = n
	b.gapStart = n
	b.gapEnd = n + b.gapSize
	return nil
}

// LoadFile replaces the buffer content with the file at path.
func (b *GapBuffer) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := b.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
