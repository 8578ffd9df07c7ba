// Package manifest builds the list of compiled script files shipped with the
// web front end and writes it out as JSON.
package manifest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tuxdudehomelab/webprep/internal/dirlist"
)

const indent = "  "

// Manifest is the persisted list of script files.
type Manifest struct {
	Scripts []string `json:"scripts"`
}

// Generate lists dir and returns a manifest of every entry ending with
// suffix. No manifest is returned if dir cannot be read.
func Generate(dir string, suffix string) (Manifest, error) {
	scripts, err := dirlist.ListBySuffix(dir, suffix)
	if err != nil {
		return Manifest{}, err
	}
	return Manifest{Scripts: scripts}, nil
}

// Encode writes m as two-space indented JSON without a trailing newline.
func Encode(writer io.Writer, m Manifest) error {
	if m.Scripts == nil {
		m.Scripts = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	err := enc.Encode(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest, reason: %w", err)
	}

	w := bufio.NewWriter(writer)
	_, err = w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	if err != nil {
		return fmt.Errorf("failed to write manifest, reason: %w", err)
	}
	return w.Flush()
}

// WriteFile creates or truncates file and writes m to it.
func WriteFile(file string, m Manifest) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create manifest file %q, reason: %w", file, err)
	}

	err = Encode(f, m)
	cerr := f.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return fmt.Errorf("failed to close manifest file %q, reason: %w", file, cerr)
	}
	return nil
}
