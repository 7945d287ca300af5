package scu

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"sculink/internal/types"
)

func (s *SCUTestSuite) TestMemoryTransactionLifecycle() {
	ctx := context.Background()
	m := NewMemory()

	start, err := m.StartTransaction(ctx, types.StartTransactionRequest{ClientID: "C1", ProcessType: "Beleg"})
	s.Require().NoError(err)
	s.Equal(uint64(1), start.TransactionNumber)
	s.Equal(uint64(1), start.SignatureData.SignatureCounter)

	info, err := m.TseInfo(ctx)
	s.Require().NoError(err)
	s.Equal([]uint64{1}, info.CurrentStartedTransactionNumbers)

	_, err = m.FinishTransaction(ctx, types.FinishTransactionRequest{ClientID: "C1", TransactionNumber: 1})
	s.Require().NoError(err)

	_, err = m.FinishTransaction(ctx, types.FinishTransactionRequest{ClientID: "C1", TransactionNumber: 1})
	var se *types.StatusError
	s.Require().True(errors.As(err, &se))
	s.Equal(404, se.StatusCode)
}

func (s *SCUTestSuite) TestMemoryExportSession() {
	ctx := context.Background()
	m := NewMemory()
	m.Archive = []byte("0123456789abcdef")

	start, err := m.StartExportSession(ctx, types.StartExportSessionRequest{ClientID: "C1"})
	s.Require().NoError(err)

	var got []byte
	for {
		chunk, err := m.ExportData(ctx, types.ExportDataRequest{TokenID: start.TokenID, MaxChunkSize: 5})
		s.Require().NoError(err)
		b, err := base64.StdEncoding.DecodeString(chunk.TarFileByteChunkBase64)
		s.Require().NoError(err)
		got = append(got, b...)
		if chunk.TarFileEndOfFile {
			break
		}
	}
	s.Equal(m.Archive, got)

	sum := sha256.Sum256(got)
	end, err := m.EndExportSession(ctx, types.EndExportSessionRequest{
		TokenID:              start.TokenID,
		Sha256ChecksumBase64: base64.StdEncoding.EncodeToString(sum[:]),
	})
	s.Require().NoError(err)
	s.True(end.IsValid)
	s.False(end.IsErased)
}

func (s *SCUTestSuite) TestMemoryStateAndClients() {
	ctx := context.Background()
	m := NewMemory()

	reg, err := m.RegisterClientID(ctx, types.RegisterClientIDRequest{ClientID: "C1"})
	s.Require().NoError(err)
	s.Equal([]string{"C1"}, reg.ClientIDs)
	unreg, err := m.UnregisterClientID(ctx, types.UnregisterClientIDRequest{ClientID: "C1"})
	s.Require().NoError(err)
	s.Empty(unreg.ClientIDs)

	st, err := m.SetTseState(ctx, types.TseState{CurrentState: types.DeviceStateTerminated})
	s.Require().NoError(err)
	s.Equal(types.DeviceStateTerminated, st.CurrentState)
	_, err = m.StartTransaction(ctx, types.StartTransactionRequest{ClientID: "C1"})
	s.True(errors.Is(err, types.ErrUnsuccessful))

	m.Fail(PathEcho, types.ErrRequestFailed)
	_, err = m.Echo(ctx, types.EchoRequest{Message: "x"})
	s.True(errors.Is(err, types.ErrRequestFailed))
	m.Fail(PathEcho, nil)
	_, err = m.Echo(ctx, types.EchoRequest{Message: "x"})
	s.NoError(err)
}
