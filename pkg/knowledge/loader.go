package knowledge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

// LoadDir reads .txt, .json, .yaml and .yml files from dir. Text files are
// one English document each; structured files hold one document object or
// a list of them, and entries without content are skipped. .pdf and .docx
// files are one document each in the language their text is written in.
// Files that cannot be parsed are logged and skipped. A missing directory,
// or one without any usable document, yields Samples().
func LoadDir(dir string, log zerolog.Logger) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Samples(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read docs dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var docs []Document
	for _, name := range names {
		path := filepath.Join(dir, name)
		var loaded []Document
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt":
			loaded, err = loadText(path, name)
		case ".json":
			loaded, err = loadStructured(path, name, json.Unmarshal)
		case ".yaml", ".yml":
			loaded, err = loadStructured(path, name, yaml.Unmarshal)
		case ".pdf":
			loaded, err = loadBinary(path, name, extractPDF)
		case ".docx":
			loaded, err = loadBinary(path, name, extractDOCX)
		default:
			continue
		}
		if errors.Is(err, ErrMalformed) {
			log.Warn().Err(err).Str("file", name).Msg("skipping unreadable document")
			continue
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	if len(docs) == 0 {
		return Samples(), nil
	}
	return docs, nil
}

func loadText(path, name string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, nil
	}
	return []Document{Document{Content: content, Source: name}.withDefaults()}, nil
}

func loadStructured(path, name string, unmarshal func([]byte, any) error) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var list []Document
	if err := unmarshal(trimmed, &list); err != nil {
		var single Document
		if err2 := unmarshal(trimmed, &single); err2 != nil {
			return nil, fmt.Errorf("parse %s: %w: %w", name, ErrMalformed, err)
		}
		list = []Document{single}
	}

	out := make([]Document, 0, len(list))
	for _, d := range list {
		d.Content = strings.TrimSpace(d.Content)
		if d.Content == "" {
			continue
		}
		if d.Source == "" {
			d.Source = name
		}
		out = append(out, d.withDefaults())
	}
	return out, nil
}

func loadBinary(path, name string, extract func([]byte) (string, error)) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	content, err := extract(data)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w: %w", name, ErrMalformed, err)
	}
	if content == "" {
		return nil, nil
	}
	return []Document{Document{Content: content, Source: name, Language: language.Detect(content)}.withDefaults()}, nil
}
