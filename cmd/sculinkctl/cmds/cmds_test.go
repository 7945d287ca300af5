package cmds

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sculink/internal/api"
	"sculink/internal/scu"
	"sculink/internal/types"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/suite"
)

// mapSource is an in-process SectionStore.
type mapSource struct {
	mu       sync.Mutex
	sections map[string]types.Section
}

func newMapSource() *mapSource {
	return &mapSource{sections: map[string]types.Section{}}
}

func (m *mapSource) GetSection(_ context.Context, name string) (types.Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sec, ok := m.sections[name]
	if !ok {
		return types.Section{}, types.ErrNotFound
	}
	return sec, nil
}

func (m *mapSource) ListSections(_ context.Context) ([]types.Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Section, 0, len(m.sections))
	for _, sec := range m.sections {
		out = append(out, sec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mapSource) PutSection(_ context.Context, sec types.Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections[sec.Name] = sec
	return nil
}

func (m *mapSource) DeleteSection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sections, name)
	return nil
}

func (m *mapSource) ClearAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections = map[string]types.Section{}
	return nil
}

type CmdsTestSuite struct {
	suite.Suite
	dir    string
	source *mapSource
	memory *scu.Memory
	server *httptest.Server
}

func TestCmdsTestSuite(t *testing.T) {
	suite.Run(t, new(CmdsTestSuite))
}

func (s *CmdsTestSuite) SetupTest() {
	s.T().Setenv("CONFIG_BACKEND", "")
	s.T().Setenv("ENV_FILE", filepath.Join(s.T().TempDir(), "missing.env"))
	s.dir = s.T().TempDir()
	s.source = newMapSource()
	s.memory = scu.NewMemory()
	s.server = httptest.NewServer(api.NewHandler(s.memory).Router())

	cfgFile = ""
	outputFormat = "json"
	sectionsFile = ""
	yesFlag = false
	SetSource(s.source)
}

func (s *CmdsTestSuite) TearDownTest() {
	s.server.Close()
	SetSource(nil)
}

func (s *CmdsTestSuite) executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root := RootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func (s *CmdsTestSuite) configFile() string {
	p := filepath.Join(s.dir, "sculink.conf")
	content := fmt.Sprintf(`
[config]
log_level = warning

[kasse1]
tss_type = 1
scu_url = %s
atrust_api_key = secret
`, s.server.URL)
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o600))
	return p
}

func (s *CmdsTestSuite) TestDevices() {
	out, err := s.executeCommand("devices", "--config", s.configFile())
	s.Require().NoError(err)

	var devices []types.DeviceConfig
	s.Require().NoError(json.Unmarshal([]byte(out), &devices))
	s.Require().Len(devices, 2, "kasse1 and its default alias")
	for _, dc := range devices {
		s.Equal(s.server.URL, dc.SCUURL)
		s.Equal("***", dc.APIKey)
	}
}

func (s *CmdsTestSuite) TestDevicesYAML() {
	out, err := s.executeCommand("devices", "--config", s.configFile(), "-o", "yaml")
	s.Require().NoError(err)

	var devices []types.DeviceConfig
	s.Require().NoError(yaml.Unmarshal([]byte(out), &devices))
	s.Len(devices, 2)
}

func (s *CmdsTestSuite) TestDevicesIncludeRemoteSections() {
	s.Require().NoError(s.source.PutSection(context.Background(), types.Section{
		Name:   "kasse2",
		Values: map[string]string{types.KeyDeviceType: "2", types.KeySCUURL: "http://remote.local"},
	}))
	out, err := s.executeCommand("devices", "--config", s.configFile())
	s.Require().NoError(err)
	s.Contains(out, "http://remote.local")
}

func (s *CmdsTestSuite) TestInfo() {
	out, err := s.executeCommand("info", "kasse1", "--config", s.configFile())
	s.Require().NoError(err)

	var info types.TseInfo
	s.Require().NoError(json.Unmarshal([]byte(out), &info))
	s.Equal(types.DeviceStateInitialized, info.CurrentState)
	s.Equal(s.memory.Firmware, info.FirmwareIdentification)
}

func (s *CmdsTestSuite) TestEcho() {
	out, err := s.executeCommand("echo", "kasse1", "hello", "--config", s.configFile())
	s.Require().NoError(err)
	s.Equal("hello\n", out)

	out, err = s.executeCommand("echo", "--config", s.configFile())
	s.Require().NoError(err)
	s.Equal("ping\n", out)
}

func (s *CmdsTestSuite) TestUnknownDevice() {
	_, err := s.executeCommand("info", "nope", "--config", s.configFile())
	s.Require().Error(err)
	s.Contains(err.Error(), `device "nope" is not configured`)
}

func (s *CmdsTestSuite) TestSectionLifecycle() {
	out, err := s.executeCommand("sections", "put", "kasse3", "tss_type=1", "scu_url=http://scu3.local")
	s.Require().NoError(err)
	s.Contains(out, `Section "kasse3" stored.`)

	out, err = s.executeCommand("sections", "get", "kasse3")
	s.Require().NoError(err)
	var sec types.Section
	s.Require().NoError(json.Unmarshal([]byte(out), &sec))
	s.Equal("http://scu3.local", sec.Values[types.KeySCUURL])

	out, err = s.executeCommand("sections", "list")
	s.Require().NoError(err)
	var sections []types.Section
	s.Require().NoError(json.Unmarshal([]byte(out), &sections))
	s.Len(sections, 1)

	_, err = s.executeCommand("sections", "delete", "kasse3")
	s.Require().NoError(err)
	_, err = s.executeCommand("sections", "get", "kasse3")
	s.ErrorIs(err, types.ErrNotFound)
}

func (s *CmdsTestSuite) TestSectionPutFromFile() {
	p := filepath.Join(s.dir, "sections.yaml")
	s.Require().NoError(os.WriteFile(p, []byte(`
kasse4:
  tss_type: 1
  scu_url: http://scu4.local
kasse5:
  tss_type: 2
  scu_url: http://scu5.local
`), 0o600))

	out, err := s.executeCommand("sections", "put", "-f", p)
	s.Require().NoError(err)
	s.Equal(2, strings.Count(out, "stored."))

	sections, err := s.source.ListSections(context.Background())
	s.Require().NoError(err)
	s.Len(sections, 2)
}

func (s *CmdsTestSuite) TestSectionPutRejectsBadArgs() {
	_, err := s.executeCommand("sections", "put", "kasse3")
	s.Error(err)
	_, err = s.executeCommand("sections", "put", "kasse3", "novalue")
	s.Error(err)
}

func (s *CmdsTestSuite) TestClearNeedsConfirmation() {
	s.Require().NoError(s.source.PutSection(context.Background(), types.Section{Name: "x", Values: map[string]string{}}))

	_, err := s.executeCommand("sections", "clear")
	s.Error(err)
	s.Len(s.source.sections, 1)

	_, err = s.executeCommand("sections", "clear", "--yes")
	s.Require().NoError(err)
	s.Empty(s.source.sections)
}

func (s *CmdsTestSuite) TestSectionsWithoutBackend() {
	SetSource(nil)
	_, err := s.executeCommand("sections", "list")
	s.Require().Error(err)
	s.Contains(err.Error(), "no configuration backend selected")
}
