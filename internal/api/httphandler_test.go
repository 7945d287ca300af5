package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sculink/internal/config"
	"sculink/internal/flow"
	"sculink/internal/httpclient"
	"sculink/internal/scu"
	"sculink/internal/types"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SimulatorTestSuite struct {
	suite.Suite
	memory *scu.Memory
	server *httptest.Server
	client *scu.Client
	ctx    context.Context
}

func TestSimulatorTestSuite(t *testing.T) {
	suite.Run(t, new(SimulatorTestSuite))
}

func (s *SimulatorTestSuite) SetupTest() {
	s.memory = scu.NewMemory()
	s.server = httptest.NewServer(NewHandler(s.memory).Router())
	s.client = scu.NewClient(s.server.URL, httpclient.NewFactory(config.NewStore(nil)))
	s.ctx = context.Background()
}

func (s *SimulatorTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *SimulatorTestSuite) TestTransactionRoundTrip() {
	started, err := flow.StartTransaction(s.ctx, s.client, "C1", "Beleg", []byte("start"))
	s.Require().NoError(err)
	s.Equal(s.memory.Serial, started.SerialNumber)
	s.Equal(uint64(1), started.SignatureCounter)

	info, err := s.client.TseInfo(s.ctx)
	s.Require().NoError(err)
	s.Equal([]uint64{started.TransactionNumber}, info.CurrentStartedTransactionNumbers)
	s.Equal(types.DeviceStateInitialized, info.CurrentState)

	_, err = flow.UpdateTransaction(s.ctx, s.client, "C1", started.TransactionNumber, "Beleg", []byte("update"))
	s.Require().NoError(err)
	finished, err := flow.FinishTransaction(s.ctx, s.client, "C1", started.TransactionNumber, "Beleg", []byte("finish"))
	s.Require().NoError(err)
	s.Equal(uint64(3), finished.SignatureCounter)
}

func (s *SimulatorTestSuite) TestStatusIsForwarded() {
	_, err := flow.FinishTransaction(s.ctx, s.client, "C1", 99, "Beleg", nil)
	var se *types.StatusError
	s.Require().True(errors.As(err, &se))
	s.Equal(http.StatusNotFound, se.StatusCode)
	s.Contains(se.Detail, "transaction 99 is not open")
	s.ErrorIs(err, types.ErrUnsuccessful)
}

func (s *SimulatorTestSuite) TestInjectedFailure() {
	s.memory.Fail(scu.PathExecuteSelfTest, errors.New("self test failed"))
	err := s.client.ExecuteSelfTest(s.ctx)
	var se *types.StatusError
	s.Require().True(errors.As(err, &se))
	s.Equal(http.StatusInternalServerError, se.StatusCode)

	s.memory.Fail(scu.PathExecuteSelfTest, nil)
	s.NoError(s.client.ExecuteSelfTest(s.ctx))
	s.NoError(s.client.ExecuteSetTseTime(s.ctx))
}

func (s *SimulatorTestSuite) TestExportSession() {
	s.memory.Archive = make([]byte, 4321)
	for i := range s.memory.Archive {
		s.memory.Archive[i] = byte(i * 7)
	}
	want := append([]byte(nil), s.memory.Archive...)

	data, err := flow.Export(s.ctx, s.client, flow.ExportFilter{Kind: flow.ExportAll, Erase: true})
	s.Require().NoError(err)
	s.Equal(want, data)

	data, err = flow.Export(s.ctx, s.client, flow.ExportFilter{Kind: flow.ExportAll})
	s.Require().NoError(err)
	s.Empty(data)
}

func (s *SimulatorTestSuite) TestClientRegistration() {
	resp, err := s.client.RegisterClientID(s.ctx, types.RegisterClientIDRequest{ClientID: "C1"})
	s.Require().NoError(err)
	s.Equal([]string{"C1"}, resp.ClientIDs)

	un, err := s.client.UnregisterClientID(s.ctx, types.UnregisterClientIDRequest{ClientID: "C1"})
	s.Require().NoError(err)
	s.Empty(un.ClientIDs)
}

func (s *SimulatorTestSuite) TestStateAndEcho() {
	state, err := s.client.SetTseState(s.ctx, types.TseState{CurrentState: types.DeviceStateTerminated})
	s.Require().NoError(err)
	s.Equal(types.DeviceStateTerminated, state.CurrentState)

	echo, err := s.client.Echo(s.ctx, types.EchoRequest{Message: "ping"})
	s.Require().NoError(err)
	s.Equal("ping", echo.Message)
}

func (s *SimulatorTestSuite) TestRejectsWrongMethodAndBody() {
	resp, err := http.Get(s.server.URL + "/v1/starttransaction")
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(s.server.URL+"/v1/echo", "application/json", nil)
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *SimulatorTestSuite) TestRunServerInterruptible() {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	port := l.Addr().(*net.TCPAddr).Port
	s.Require().NoError(l.Close())

	stop, done := RunServerInterruptible(port, s.memory)
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	s.Eventually(func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	close(stop)
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(20 * time.Second):
		s.Fail("server did not stop")
	}
}
