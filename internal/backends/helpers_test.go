package backends

import (
	"errors"
	"sculink/internal/types"
)

func (s *BackendsTestSuite) TestSourceFromEnv() {
	s.T().Setenv(ConfigBackendEnvKey, "")
	store, err := SourceFromEnv()
	s.NoError(err)
	s.Nil(store)

	s.T().Setenv(ConfigBackendEnvKey, BackendFile)
	store, err = SourceFromEnv()
	s.NoError(err)
	s.Nil(store)

	s.T().Setenv(ConfigBackendEnvKey, "etcd")
	_, err = SourceFromEnv()
	s.True(errors.Is(err, types.ErrInvalidBackend))
}

func (s *BackendsTestSuite) TestParseBoolean() {
	s.True(parseBoolean("true"))
	s.True(parseBoolean("1"))
	s.False(parseBoolean("nope"))
	s.Equal("fallback", getenv("SCULINK_SURELY_UNSET_VAR", "fallback"))
}
