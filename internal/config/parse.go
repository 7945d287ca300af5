package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sculink/internal/types"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"gopkg.in/ini.v1"
)

// ReadFile reads a configuration file into sections. Files ending in .yaml or
// .yml are read as YAML, everything else as ini.
func ReadFile(path string) ([]types.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.Err(types.ErrConfigFileNotFound, err, "")
		}
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseINI(data)
	}
}

// ParseINI reads section-based key/value text. Keys outside any section are
// ignored. Inline comments are not recognised so that `;` and `#` can appear
// in credentials.
func ParseINI(data []byte) ([]types.Section, error) {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	sections := make([]types.Section, 0, len(f.Sections()))
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		values := make(map[string]string, len(sec.Keys()))
		for _, k := range sec.Keys() {
			values[k.Name()] = strings.TrimSpace(k.Value())
		}
		sections = append(sections, types.Section{Name: sec.Name(), Values: values})
	}
	return sections, nil
}

// ParseYAML reads a mapping of section name to a flat mapping of keys:
//
//	config:
//	  timeout: 1500
//	default:
//	  tss_type: 1
//	  scu_url: http://scu.local
func ParseYAML(data []byte) ([]types.Section, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]types.Section, 0, len(raw))
	for _, name := range names {
		values := make(map[string]string, len(raw[name]))
		for k, v := range raw[name] {
			if v == nil {
				values[k] = ""
				continue
			}
			values[k] = strings.TrimSpace(fmt.Sprint(v))
		}
		sections = append(sections, types.Section{Name: name, Values: values})
	}
	return sections, nil
}
