// Package entrypoint assembles the HTML entry point of the web front end
// from a template containing a single marker line.
//
// In vite mode the marker line is replaced by one module script tag per
// source file, in trunk mode the marker line is dropped.
package entrypoint

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tuxdudehomelab/webprep/internal/dirlist"
)

// Options describes one assembly run.
type Options struct {
	Mode Mode

	// Template is the source HTML file.
	Template string
	// Output is overwritten with the assembled document.
	Output string
	// ModulesDir is listed for files ending with ModuleSuffix in vite mode.
	ModulesDir   string
	ModuleSuffix string
	// SrcPrefix is prepended to each file name in the generated tags.
	SrcPrefix string
	// Sentinel identifies the marker line.
	Sentinel string
}

// ScriptTag returns the module script tag referencing file.
func ScriptTag(srcPrefix string, file string) string {
	return fmt.Sprintf(`<script type="module" src="%s%s"></script>`, srcPrefix, file)
}

// Inject replaces the first line of content containing sentinel with block.
// Lines end at \n, \r, U+2028 or U+2029, and the terminator of the marker
// line is kept.
func Inject(content string, sentinel string, block string) string {
	start := 0
	for {
		end := len(content)
		if i := strings.IndexFunc(content[start:], isLineBreak); i >= 0 {
			end = start + i
		}
		if strings.Contains(content[start:end], sentinel) {
			return content[:start] + block + content[end:]
		}
		if end == len(content) {
			return content
		}
		_, size := utf8.DecodeRuneInString(content[end:])
		start = end + size
	}
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// Strip removes every line of content containing sentinel.
func Strip(content string, sentinel string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.Contains(line, sentinel) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Assemble reads the template and returns the document for opts.Mode.
func Assemble(opts Options) (string, error) {
	data, err := os.ReadFile(opts.Template)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q, reason: %w", opts.Template, err)
	}
	content := string(data)

	switch opts.Mode {
	case ModeVite:
		files, err := dirlist.ListBySuffix(opts.ModulesDir, opts.ModuleSuffix)
		if err != nil {
			return "", err
		}
		tags := make([]string, 0, len(files))
		for _, f := range files {
			tags = append(tags, ScriptTag(opts.SrcPrefix, f))
		}
		return Inject(content, opts.Sentinel, strings.Join(tags, "\n")), nil
	case ModeTrunk:
		return Strip(content, opts.Sentinel), nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidMode, opts.Mode)
}

// Run assembles the document and writes it to opts.Output. Nothing is
// written when assembly fails.
func Run(opts Options) error {
	content, err := Assemble(opts)
	if err != nil {
		return err
	}

	err = os.WriteFile(opts.Output, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("failed to write output %q, reason: %w", opts.Output, err)
	}
	return nil
}
