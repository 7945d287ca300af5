package httpclient

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sculink/internal/config"
	"sculink/internal/types"
	"strings"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type FactoryTestSuite struct {
	suite.Suite
	store *config.Store
}

func TestFactoryTestSuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) SetupTest() {
	s.store = config.NewStore(nil)
}

func (s *FactoryTestSuite) get(c *http.Client, url string) string {
	resp, err := c.Get(url)
	s.Require().NoError(err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(b)
}

func (s *FactoryTestSuite) TestNoProxy() {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("direct"))
	}))
	defer target.Close()

	f := NewFactory(s.store)
	s.Equal("direct", s.get(f.Client(), target.URL))
}

func (s *FactoryTestSuite) TestFtpProxyFallsBack() {
	hook := test.NewGlobal()
	defer hook.Reset()

	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("direct"))
	}))
	defer target.Close()

	s.store.UpdateGeneral(func(g *types.GeneralConfig) { g.HTTPProxy = "ftp://proxy.local:21" })
	f := NewFactory(s.store)
	s.Require().NotNil(f.Client())
	s.Equal("direct", s.get(f.Client(), target.URL))

	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel && e.Message == "No proxy used" {
			warned = true
		}
	}
	s.True(warned)

	_, err := Build(s.store.GeneralSettings())
	s.True(errors.Is(err, types.ErrUnknownProxyScheme))
}

func (s *FactoryTestSuite) TestProxyWithCredentials() {
	var mu sync.Mutex
	var seenHost, seenAuth string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seenHost = r.URL.Host
		seenAuth = r.Header.Get("Proxy-Authorization")
		mu.Unlock()
		_, _ = w.Write([]byte("via-proxy"))
	}))
	defer proxy.Close()

	s.store.UpdateGeneral(func(g *types.GeneralConfig) {
		g.HTTPProxy = proxy.URL
		g.HTTPProxyUsername = "user"
		g.HTTPProxyPassword = "p@ss"
	})
	f := NewFactory(s.store)
	s.Equal("via-proxy", s.get(f.Client(), "http://scu.invalid/v1/tseinfo"))

	mu.Lock()
	defer mu.Unlock()
	s.Equal("scu.invalid", seenHost)
	s.True(strings.HasPrefix(seenAuth, "Basic "))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(seenAuth, "Basic "))
	s.Require().NoError(err)
	s.Equal("user:p@ss", string(raw))
}

func (s *FactoryTestSuite) TestRebuildSwapsClient() {
	f := NewFactory(s.store)
	before := f.Client()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.NotNil(f.Client())
			}
		}()
	}
	for i := 0; i < 20; i++ {
		f.Rebuild()
	}
	wg.Wait()
	s.NotSame(before, f.Client())
}
