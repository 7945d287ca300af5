package logging

import (
	"errors"
	"io"
	"os"
	"sculink/internal/types"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type LoggingTestSuite struct {
	suite.Suite
}

func TestLoggingTestSuite(t *testing.T) {
	suite.Run(t, new(LoggingTestSuite))
}

func (s *LoggingTestSuite) TearDownTest() {
	g := types.DefaultGeneralConfig()
	g.LoggingEnabled = true
	g.LoggingStderr = true
	g.LogLevel = "info"
	s.Require().NoError(Configure(g))
}

func (s *LoggingTestSuite) TestDisabledDiscards() {
	s.Require().NoError(Configure(types.DefaultGeneralConfig()))
	s.Equal(io.Discard, log.StandardLogger().Out)
	s.Equal(log.TraceLevel, log.GetLevel())
}

func (s *LoggingTestSuite) TestInvalidLevel() {
	g := types.DefaultGeneralConfig()
	g.LogLevel = "chatty"
	err := Configure(g)
	s.True(errors.Is(err, types.ErrInvalidLogLevel))
}

func (s *LoggingTestSuite) TestFileAppendAndTruncate() {
	dir := s.T().TempDir()
	g := types.DefaultGeneralConfig()
	g.LoggingEnabled = true
	g.LoggingFile = true
	g.LogDir = dir
	g.LogLevel = "info"

	s.Require().NoError(Configure(g))
	log.Info("first")
	s.Require().NoError(Configure(g))
	log.Info("second")

	b, err := os.ReadFile(LogFilePath(dir))
	s.Require().NoError(err)
	s.Contains(string(b), "first")
	s.Contains(string(b), "second")

	g.LogAppend = false
	s.Require().NoError(Configure(g))
	log.Info("third")
	b, err = os.ReadFile(LogFilePath(dir))
	s.Require().NoError(err)
	s.NotContains(string(b), "first")
	s.Contains(string(b), "third")
}
