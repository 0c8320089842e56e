// Package manifest edits package.json files without disturbing key order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

var (
	// ErrNotObject is returned when the manifest is not a JSON object.
	ErrNotObject = errors.New("manifest: not a JSON object")
	// ErrMissingField is returned when a required field is absent or not a string.
	ErrMissingField = errors.New("manifest: missing field")
)

type field struct {
	key   string
	value json.RawMessage
}

// Manifest is a top-level JSON object whose members keep their original order.
type Manifest struct {
	fields []field
}

// Load reads and parses the manifest at path. The name and version
// fields must be present.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, key := range []string{"name", "version"} {
		if _, err := m.String(key); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return m, nil
}

// Parse decodes a JSON object, recording member order.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	m := &Manifest{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		key := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("manifest: field %q: %w", key, err)
		}
		m.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("manifest: trailing data after object")
	}
	return m, nil
}

// Keys returns member names in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.key
	}
	return keys
}

// String returns the string value of key.
func (m *Manifest) String(key string) (string, error) {
	for _, f := range m.fields {
		if f.key != key {
			continue
		}
		var s string
		if err := json.Unmarshal(f.value, &s); err != nil {
			return "", fmt.Errorf("%w: %s is not a string", ErrMissingField, key)
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingField, key)
}

// Name returns the package name.
func (m *Manifest) Name() string {
	s, _ := m.String("name")
	return s
}

// Version returns the package version.
func (m *Manifest) Version() string {
	s, _ := m.String("version")
	return s
}

// SetVersion replaces the version in place, or appends it when absent.
func (m *Manifest) SetVersion(v string) {
	raw, _ := marshal(v)
	m.set("version", raw)
}

func (m *Manifest) set(key string, value json.RawMessage) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].value = value
			return
		}
	}
	m.fields = append(m.fields, field{key: key, value: value})
}

// Bytes renders the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	if len(m.fields) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range m.fields {
		key, err := marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		if err := json.Indent(&buf, f.value, "  ", "  "); err != nil {
			return nil, fmt.Errorf("manifest: field %q: %w", f.key, err)
		}
		if i < len(m.fields)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Save writes the manifest to path.
func (m *Manifest) Save(fs afero.Fs, path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
