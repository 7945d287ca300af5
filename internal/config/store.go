// Package config holds the device table and general settings, rebuilt
// wholesale from a configuration file on every reload.
package config

import (
	"context"
	"sculink/internal/ports"
	"sculink/internal/types"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const sourceTimeout = 10 * time.Second

// Store is safe for concurrent use. The lock is only held for a lookup or for
// swapping in a new table.
type Store struct {
	mu      sync.RWMutex
	path    string
	devices map[string]types.DeviceConfig
	general types.GeneralConfig

	source ports.SectionStore
}

// NewStore returns an empty store with default general settings. source may
// be nil; when set, its sections are merged over the file's on every Load.
func NewStore(source ports.SectionStore) *Store {
	return &Store{
		devices: map[string]types.DeviceConfig{},
		general: types.DefaultGeneralConfig(),
		source:  source,
	}
}

// Load reads path and replaces the device table and general settings. It
// returns false, leaving the current state untouched, if the file is missing
// or cannot be parsed.
func (s *Store) Load(path string) bool {
	sections, err := ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("configuration not loaded")
		return false
	}
	sections = s.mergeSource(sections)

	devices, general := Build(sections)

	s.mu.Lock()
	s.path = path
	s.devices = devices
	s.general = general
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"path":    path,
		"devices": len(devices),
	}).Info("configuration loaded")
	return true
}

func (s *Store) mergeSource(sections []types.Section) []types.Section {
	if s.source == nil {
		return sections
	}
	ctx, cancel := context.WithTimeout(context.Background(), sourceTimeout)
	defer cancel()
	remote, err := s.source.ListSections(ctx)
	if err != nil {
		log.WithError(err).Warn("remote sections unavailable, using file only")
		return sections
	}
	return MergeSections(sections, remote)
}

// Resolve returns a copy of the named device's configuration.
func (s *Store) Resolve(name string) (types.DeviceConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dc, ok := s.devices[name]
	return dc, ok
}

// GeneralSettings returns the current general settings.
func (s *Store) GeneralSettings() types.GeneralConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.general
}

// UpdateGeneral applies fn to a copy of the general settings and stores the
// result.
func (s *Store) UpdateGeneral(fn func(g *types.GeneralConfig)) types.GeneralConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.general
	fn(&g)
	s.general = g
	return g
}

// Path is the file of the last successful Load.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Devices returns a copy of the whole device table.
func (s *Store) Devices() map[string]types.DeviceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]types.DeviceConfig, len(s.devices))
	for k, v := range s.devices {
		out[k] = v
	}
	return out
}

// Names lists the configured device names in order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.devices))
	for k := range s.devices {
		names = append(names, k)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Build turns sections into a device table and general settings.
func Build(sections []types.Section) (map[string]types.DeviceConfig, types.GeneralConfig) {
	general := types.DefaultGeneralConfig()
	devices := make(map[string]types.DeviceConfig)

	var sole []types.DeviceConfig
	explicitDefault := false
	for _, sec := range sections {
		if sec.Name == types.GeneralSectionName {
			general = parseGeneral(sec.Values)
			continue
		}
		dc, ok := deviceFromSection(sec)
		if !ok {
			log.WithField("section", sec.Name).Debug("skipping section without a recognised device type and scu url")
			continue
		}
		devices[dc.Name] = dc
		if sec.Name == types.DefaultDeviceName {
			explicitDefault = true
			dc.Name = types.DefaultDeviceName
			devices[types.DefaultDeviceName] = dc
			continue
		}
		sole = append(sole, dc)
	}
	if !explicitDefault && len(sole) == 1 {
		dc := sole[0]
		dc.Name = types.DefaultDeviceName
		devices[types.DefaultDeviceName] = dc
	}
	return devices, general
}

func deviceFromSection(sec types.Section) (types.DeviceConfig, bool) {
	tt, ok := types.ParseDeviceType(sec.Values[types.KeyDeviceType])
	if !ok {
		return types.DeviceConfig{}, false
	}
	url := strings.TrimSpace(sec.Values[types.KeySCUURL])
	if url == "" {
		return types.DeviceConfig{}, false
	}
	name := sec.Name
	if v := strings.TrimSpace(sec.Values[types.KeyName]); v != "" {
		name = v
	}
	return types.DeviceConfig{
		Name:         name,
		Type:         tt,
		SCUURL:       url,
		VTSSID:       sec.Values[types.KeyVTSSID],
		APIKey:       sec.Values[types.KeyAPIKey],
		TimeAdminID:  sec.Values[types.KeyTimeAdminID],
		TimeAdminPwd: sec.Values[types.KeyTimeAdminPwd],
	}, true
}

// MergeSections returns base with every section of override replacing the
// base section of the same name.
func MergeSections(base, override []types.Section) []types.Section {
	idx := make(map[string]int, len(base))
	out := make([]types.Section, 0, len(base)+len(override))
	for _, sec := range base {
		idx[sec.Name] = len(out)
		out = append(out, sec)
	}
	for _, sec := range override {
		if i, ok := idx[sec.Name]; ok {
			out[i] = sec
			continue
		}
		idx[sec.Name] = len(out)
		out = append(out, sec)
	}
	return out
}
