package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sculink/internal/types"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o600))
	return p
}

const twoDevices = `
[config]
timeout = 3000
http_proxy = http://proxy.local:3128
logging_enabled = true
log_level = DEBUG

[kasse1]
tss_type = 1
scu_url = http://scu.local
atrust_api_key = k;ey#1

[kasse2]
name = filiale
tss_type = 2
scu_url = https://scu2.local

[broken]
tss_type = 7
scu_url = http://nowhere
`

func (s *ConfigTestSuite) TestResolve() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))

	dc, ok := st.Resolve("kasse1")
	s.Require().True(ok)
	s.Equal("http://scu.local", dc.SCUURL)
	s.Equal(types.DeviceTypeAsignOnline, dc.Type)
	s.Equal("k;ey#1", dc.APIKey)

	dc, ok = st.Resolve("filiale")
	s.Require().True(ok)
	s.Equal(types.DeviceTypeCryptoVision, dc.Type)
	s.Equal("https://scu2.local", dc.SCUURL)

	_, ok = st.Resolve("kasse2")
	s.False(ok)
	_, ok = st.Resolve("broken")
	s.False(ok)
	_, ok = st.Resolve("default")
	s.False(ok, "two devices and no explicit default")

	g := st.GeneralSettings()
	s.Equal(uint64(3000), g.Timeout)
	s.Equal(uint64(1), g.Retries)
	s.Equal("http://proxy.local:3128", g.HTTPProxy)
	s.True(g.LoggingEnabled)
	s.Equal("debug", g.LogLevel)
	s.True(g.LogAppend)
	s.False(g.LogDetails)
}

func (s *ConfigTestSuite) TestResolveReturnsCopy() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))
	dc, _ := st.Resolve("kasse1")
	dc.SCUURL = "http://mutated"
	again, _ := st.Resolve("kasse1")
	s.Equal("http://scu.local", again.SCUURL)
}

func (s *ConfigTestSuite) TestSoleSectionIsDefault() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("one.conf", "[only]\ntss_type=1\nscu_url=http://only.local\n")))
	dc, ok := st.Resolve(types.DefaultDeviceName)
	s.Require().True(ok)
	s.Equal("http://only.local", dc.SCUURL)
	_, ok = st.Resolve("only")
	s.True(ok)
}

func (s *ConfigTestSuite) TestExplicitDefaultWins() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("d.conf",
		"[default]\ntss_type=1\nscu_url=http://scu.local\n[other]\ntss_type=1\nscu_url=http://other\n")))
	dc, ok := st.Resolve(types.DefaultDeviceName)
	s.Require().True(ok)
	s.Equal("http://scu.local", dc.SCUURL)
	s.Equal([]string{"default", "other"}, st.Names())
}

func (s *ConfigTestSuite) TestMissingFileKeepsTable() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))
	s.False(st.Load(filepath.Join(s.dir, "missing.conf")))
	_, ok := st.Resolve("kasse1")
	s.True(ok)
	s.Equal(filepath.Join(s.dir, "a.conf"), st.Path())

	_, err := ReadFile(filepath.Join(s.dir, "missing.conf"))
	s.True(errors.Is(err, types.ErrConfigFileNotFound))
}

func (s *ConfigTestSuite) TestUnparsableFileKeepsTable() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))
	s.False(st.Load(s.write("bad.yaml", "config: [unterminated")))
	s.Len(st.Devices(), 2)
}

func (s *ConfigTestSuite) TestNoConfigSectionUsesDefaults() {
	st := NewStore(nil)
	st.UpdateGeneral(func(g *types.GeneralConfig) { g.Timeout = 1 })
	s.Require().True(st.Load(s.write("a.conf", "[x]\ntss_type=1\nscu_url=http://x\n")))
	s.Equal(types.DefaultGeneralConfig(), st.GeneralSettings())
}

func (s *ConfigTestSuite) TestYAML() {
	st := NewStore(nil)
	s.Require().True(st.Load(s.write("c.yaml", `
config:
  retries: 3
  log_colors: true
default:
  tss_type: 1
  scu_url: http://scu.local
`)))
	dc, ok := st.Resolve("default")
	s.Require().True(ok)
	s.Equal("http://scu.local", dc.SCUURL)
	s.Equal(uint64(3), st.GeneralSettings().Retries)
	s.True(st.GeneralSettings().LogColors)
}

func (s *ConfigTestSuite) TestUpdateGeneral() {
	st := NewStore(nil)
	g := st.UpdateGeneral(func(g *types.GeneralConfig) {
		g.HTTPProxy = "http://p"
		g.MaxAuditLogSize = 5
	})
	s.Equal("http://p", g.HTTPProxy)
	s.Equal(uint32(5), st.GeneralSettings().MaxAuditLogSize)
}

type staticSource struct {
	sections []types.Section
	err      error
}

func (f *staticSource) GetSection(_ context.Context, name string) (types.Section, error) {
	for _, sec := range f.sections {
		if sec.Name == name {
			return sec, nil
		}
	}
	return types.Section{}, types.ErrNotFound
}
func (f *staticSource) ListSections(context.Context) ([]types.Section, error) { return f.sections, f.err }
func (f *staticSource) PutSection(context.Context, types.Section) error        { return nil }
func (f *staticSource) DeleteSection(context.Context, string) error            { return nil }
func (f *staticSource) ClearAll(context.Context) error                         { return nil }

func (s *ConfigTestSuite) TestSourceOverridesFile() {
	src := &staticSource{sections: []types.Section{
		{Name: "kasse1", Values: map[string]string{"tss_type": "1", "scu_url": "http://remote"}},
		{Name: "kasse3", Values: map[string]string{"tss_type": "2", "scu_url": "http://three"}},
	}}
	st := NewStore(src)
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))
	dc, _ := st.Resolve("kasse1")
	s.Equal("http://remote", dc.SCUURL)
	_, ok := st.Resolve("kasse3")
	s.True(ok)

	src.err = errors.New("unreachable")
	s.Require().True(st.Load(s.write("a.conf", twoDevices)))
	dc, _ = st.Resolve("kasse1")
	s.Equal("http://scu.local", dc.SCUURL)
}

func tableFile(prefix string, n int, timeout int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[config]\ntimeout = %d\n", timeout)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "[%s%d]\ntss_type = 1\nscu_url = http://%s.local\n", prefix, i, prefix)
	}
	return b.String()
}

func (s *ConfigTestSuite) TestReloadIsAtomic() {
	a := s.write("a.conf", tableFile("a", 40, 1000))
	b := s.write("b.conf", tableFile("b", 40, 2000))
	st := NewStore(nil)
	s.Require().True(st.Load(a))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if i%2 == 0 {
				st.Load(b)
			} else {
				st.Load(a)
			}
		}
		close(stop)
	}()

	mixed := 0
	for done := false; !done; {
		select {
		case <-stop:
			done = true
		default:
		}
		table := st.Devices()
		var as, bs int
		for name, dc := range table {
			switch {
			case strings.HasPrefix(name, "a") && dc.SCUURL == "http://a.local":
				as++
			case strings.HasPrefix(name, "b") && dc.SCUURL == "http://b.local":
				bs++
			}
		}
		if (as != 0 && bs != 0) || (as != 40 && bs != 40) {
			mixed++
		}
	}
	wg.Wait()
	s.Zero(mixed)
}
