package flow

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"sculink/internal/scu"
	"sculink/internal/types"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UnitTestSuite struct {
	suite.Suite
	mem *scu.Memory
}

func TestUnitTestSuite(t *testing.T) {
	suite.Run(t, new(UnitTestSuite))
}

func (s *UnitTestSuite) SetupTest() {
	s.mem = scu.NewMemory()
}

// recordingSCU captures the requests flow sends while delegating to Memory.
type recordingSCU struct {
	*scu.Memory
	starts  []types.StartTransactionRequest
	chunks  []types.ExportDataRequest
	ends    []types.EndExportSessionRequest
	byTx    []types.StartExportSessionByTransactionRequest
	byTime  []types.StartExportSessionByTimeStampRequest
	invalid bool
}

func (r *recordingSCU) StartTransaction(ctx context.Context, req types.StartTransactionRequest) (types.StartTransactionResponse, error) {
	r.starts = append(r.starts, req)
	return r.Memory.StartTransaction(ctx, req)
}

func (r *recordingSCU) ExportData(ctx context.Context, req types.ExportDataRequest) (types.ExportDataResponse, error) {
	r.chunks = append(r.chunks, req)
	return r.Memory.ExportData(ctx, req)
}

func (r *recordingSCU) EndExportSession(ctx context.Context, req types.EndExportSessionRequest) (types.EndExportSessionResponse, error) {
	r.ends = append(r.ends, req)
	if r.invalid {
		req.Sha256ChecksumBase64 = "tampered"
	}
	return r.Memory.EndExportSession(ctx, req)
}

func (r *recordingSCU) StartExportSessionByTransaction(ctx context.Context, req types.StartExportSessionByTransactionRequest) (types.StartExportSessionResponse, error) {
	r.byTx = append(r.byTx, req)
	return r.Memory.StartExportSessionByTransaction(ctx, req)
}

func (r *recordingSCU) StartExportSessionByTimeStamp(ctx context.Context, req types.StartExportSessionByTimeStampRequest) (types.StartExportSessionResponse, error) {
	r.byTime = append(r.byTime, req)
	return r.Memory.StartExportSessionByTimeStamp(ctx, req)
}

func (s *UnitTestSuite) TestStartTransaction() {
	rec := &recordingSCU{Memory: s.mem}
	out, err := StartTransaction(context.Background(), rec, "C1", "Beleg", []byte("Beleg^1.00_0.00"))
	s.Require().NoError(err)
	s.Equal(uint64(1), out.TransactionNumber)
	s.Equal(s.mem.Serial, out.SerialNumber)
	s.NotEmpty(out.Signature)

	s.Require().Len(rec.starts, 1)
	req := rec.starts[0]
	s.Equal("C1", req.ClientID)
	s.Equal(base64.StdEncoding.EncodeToString([]byte("Beleg^1.00_0.00")), req.ProcessDataBase64)
	s.False(req.IsRetry)
	id, err := uuid.Parse(req.QueueItemID)
	s.Require().NoError(err)
	s.Equal(uuid.Version(4), id.Version())
}

func (s *UnitTestSuite) TestQueueItemIDsAreUnique() {
	s.NotEqual(NewQueueItemID(), NewQueueItemID())
}

func (s *UnitTestSuite) TestExportAccumulatesChunks() {
	archive := make([]byte, 2500)
	for i := range archive {
		archive[i] = byte(i)
	}
	s.mem.Archive = archive
	rec := &recordingSCU{Memory: s.mem}

	data, err := Export(context.Background(), rec, ExportFilter{ClientID: "C1", Erase: true})
	s.Require().NoError(err)
	s.Equal(archive, data)
	s.Len(rec.chunks, 3)
	for _, c := range rec.chunks {
		s.Equal(ExportChunkSize, c.MaxChunkSize)
	}
	sum := sha256.Sum256(archive)
	s.Require().Len(rec.ends, 1)
	s.Equal(base64.StdEncoding.EncodeToString(sum[:]), rec.ends[0].Sha256ChecksumBase64)
	s.True(rec.ends[0].Erase)
	s.Nil(s.mem.Archive)
}

func (s *UnitTestSuite) TestExportEmptyArchive() {
	data, err := Export(context.Background(), s.mem, ExportFilter{})
	s.Require().NoError(err)
	s.Empty(data)
}

func (s *UnitTestSuite) TestExportChecksumRejected() {
	s.mem.Archive = []byte("tar")
	rec := &recordingSCU{Memory: s.mem, invalid: true}
	_, err := Export(context.Background(), rec, ExportFilter{})
	s.True(errors.Is(err, types.ErrChecksumMismatch))
}

func (s *UnitTestSuite) TestExportFilters() {
	rec := &recordingSCU{Memory: s.mem}
	_, err := Export(context.Background(), rec, ExportFilter{Kind: ExportByTransaction, ClientID: "C1", FromTx: 5, ToTx: 5})
	s.Require().NoError(err)
	s.Equal([]types.StartExportSessionByTransactionRequest{{ClientID: "C1", From: 5, To: 5}}, rec.byTx)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	_, err = Export(context.Background(), rec, ExportFilter{Kind: ExportByTimeStamp, From: from, To: to})
	s.Require().NoError(err)
	s.Require().Len(rec.byTime, 1)
	s.True(rec.byTime[0].From.Equal(from))
	s.True(rec.byTime[0].To.Equal(to))

	_, err = Export(context.Background(), rec, ExportFilter{Kind: ExportByTransaction, FromTx: 9, ToTx: 3})
	s.True(errors.Is(err, types.ErrInvalidInput))
}

func (s *UnitTestSuite) TestBadSignatureFailsWholeCall() {
	_, err := signed(1, types.Timestamp{}, "c2VyaWFs", types.SignatureData{SignatureBase64: "!!"})
	s.True(errors.Is(err, types.ErrMalformedResponse))
}
