package flow

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sculink/internal/ports"
	"sculink/internal/types"
	"time"

	log "github.com/sirupsen/logrus"
)

// ExportKind selects which startexportsession variant opens the session.
type ExportKind int

const (
	ExportAll ExportKind = iota
	ExportByTransaction
	ExportByTimeStamp
)

// ExportFilter describes what to export. ClientID may be empty for all
// clients.
type ExportFilter struct {
	Kind     ExportKind
	ClientID string
	Erase    bool
	FromTx   uint64
	ToTx     uint64
	From     time.Time
	To       time.Time
}

// Export runs one export session: start, fetch chunks until end of file, end
// with the SHA-256 of everything received. A session the SCU reports as
// invalid fails with ErrChecksumMismatch.
func Export(ctx context.Context, scu ports.SCU, filter ExportFilter) ([]byte, error) {
	start, err := startExport(ctx, scu, filter)
	if err != nil {
		return nil, err
	}

	var data []byte
	for {
		chunk, err := scu.ExportData(ctx, types.ExportDataRequest{
			TokenID:      start.TokenID,
			MaxChunkSize: ExportChunkSize,
		})
		if err != nil {
			return nil, err
		}
		b, err := DecodeBase64(chunk.TarFileByteChunkBase64, "TarFileByteChunkBase64")
		if err != nil {
			return nil, err
		}
		data = append(data, b...)
		if chunk.TarFileEndOfFile {
			break
		}
		if len(b) == 0 {
			return nil, types.Err(types.ErrMalformedResponse, nil, "empty chunk before end of file for token %s", start.TokenID)
		}
	}

	sum := sha256.Sum256(data)
	end, err := scu.EndExportSession(ctx, types.EndExportSessionRequest{
		TokenID:              start.TokenID,
		Sha256ChecksumBase64: base64.StdEncoding.EncodeToString(sum[:]),
		Erase:                filter.Erase,
	})
	if err != nil {
		return nil, err
	}
	if !end.IsValid {
		return nil, types.Err(types.ErrChecksumMismatch, nil, "token %s, %d bytes", start.TokenID, len(data))
	}
	log.WithFields(log.Fields{
		"token":  start.TokenID,
		"bytes":  len(data),
		"erased": end.IsErased,
	}).Debug("export session finished")
	return data, nil
}

func startExport(ctx context.Context, scu ports.SCU, filter ExportFilter) (types.StartExportSessionResponse, error) {
	switch filter.Kind {
	case ExportByTransaction:
		if filter.ToTx < filter.FromTx {
			return types.StartExportSessionResponse{}, types.Err(types.ErrInvalidInput, nil, "transaction range %d..%d", filter.FromTx, filter.ToTx)
		}
		return scu.StartExportSessionByTransaction(ctx, types.StartExportSessionByTransactionRequest{
			ClientID: filter.ClientID,
			From:     filter.FromTx,
			To:       filter.ToTx,
		})
	case ExportByTimeStamp:
		if filter.To.Before(filter.From) {
			return types.StartExportSessionResponse{}, types.Err(types.ErrInvalidInput, nil, "time range %s..%s", filter.From, filter.To)
		}
		return scu.StartExportSessionByTimeStamp(ctx, types.StartExportSessionByTimeStampRequest{
			ClientID: filter.ClientID,
			From:     types.NewTimestamp(filter.From),
			To:       types.NewTimestamp(filter.To),
		})
	default:
		return scu.StartExportSession(ctx, types.StartExportSessionRequest{
			ClientID: filter.ClientID,
			Erase:    filter.Erase,
		})
	}
}
