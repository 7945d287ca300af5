// Package httpclient builds the HTTP client used for every SCU call and keeps
// the active one behind an atomic pointer.
package httpclient

import (
	"net/http"
	"net/url"
	"sculink/internal/ports"
	"sculink/internal/types"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/gzhttp"
	log "github.com/sirupsen/logrus"
)

// Factory is safe for concurrent use. Client never blocks; Rebuild swaps in a
// fully built client with a single store.
type Factory struct {
	settings ports.SettingsProvider
	current  atomic.Pointer[http.Client]
}

// NewFactory builds the first client from the current settings.
func NewFactory(settings ports.SettingsProvider) *Factory {
	f := &Factory{settings: settings}
	f.Rebuild()
	return f
}

// Client returns the active client.
func (f *Factory) Client() *http.Client {
	return f.current.Load()
}

// Rebuild constructs a client from the current general settings and makes it
// the active one. An unusable proxy setting is logged and ignored.
func (f *Factory) Rebuild() *http.Client {
	g := f.settings.GeneralSettings()
	c, err := Build(g)
	if err != nil {
		log.WithError(err).WithField("proxy", redact(g.HTTPProxy)).Error("cannot use configured proxy")
		log.Warn("No proxy used")
		c = newClient(nil)
	}
	f.current.Store(c)
	return c
}

// Build returns a client honoring the proxy of g. Only http and https proxies
// are accepted.
func Build(g types.GeneralConfig) (*http.Client, error) {
	if strings.TrimSpace(g.HTTPProxy) == "" {
		return newClient(nil), nil
	}
	u, err := ProxyURL(g)
	if err != nil {
		return nil, err
	}
	return newClient(u), nil
}

// ProxyURL parses the proxy setting and attaches its credentials as userinfo.
func ProxyURL(g types.GeneralConfig) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(g.HTTPProxy))
	if err != nil {
		return nil, types.Err(types.ErrUnknownProxyScheme, err, "")
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return nil, types.Err(types.ErrUnknownProxyScheme, nil, "scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, types.Err(types.ErrUnknownProxyScheme, nil, "proxy %q has no host", redact(g.HTTPProxy))
	}
	if g.HTTPProxyUsername != "" {
		u.User = url.UserPassword(g.HTTPProxyUsername, g.HTTPProxyPassword)
	}
	return u, nil
}

func newClient(proxy *url.URL) *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if proxy == nil {
		t.Proxy = nil
	} else {
		t.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{Transport: gzhttp.Transport(t)}
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}
