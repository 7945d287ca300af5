package ports

import (
	"context"
	"sculink/internal/types"
)

// SCU is the set of operations a Signature Creation Unit offers for one device.
// Every call is a single blocking round trip.
type SCU interface {
	StartTransaction(ctx context.Context, req types.StartTransactionRequest) (types.StartTransactionResponse, error)
	UpdateTransaction(ctx context.Context, req types.UpdateTransactionRequest) (types.UpdateTransactionResponse, error)
	FinishTransaction(ctx context.Context, req types.FinishTransactionRequest) (types.FinishTransactionResponse, error)

	TseInfo(ctx context.Context) (types.TseInfo, error)
	SetTseState(ctx context.Context, state types.TseState) (types.TseState, error)

	RegisterClientID(ctx context.Context, req types.RegisterClientIDRequest) (types.RegisterClientIDResponse, error)
	UnregisterClientID(ctx context.Context, req types.UnregisterClientIDRequest) (types.UnregisterClientIDResponse, error)

	ExecuteSetTseTime(ctx context.Context) error
	ExecuteSelfTest(ctx context.Context) error

	StartExportSession(ctx context.Context, req types.StartExportSessionRequest) (types.StartExportSessionResponse, error)
	StartExportSessionByTimeStamp(ctx context.Context, req types.StartExportSessionByTimeStampRequest) (types.StartExportSessionResponse, error)
	StartExportSessionByTransaction(ctx context.Context, req types.StartExportSessionByTransactionRequest) (types.StartExportSessionResponse, error)
	ExportData(ctx context.Context, req types.ExportDataRequest) (types.ExportDataResponse, error)
	EndExportSession(ctx context.Context, req types.EndExportSessionRequest) (types.EndExportSessionResponse, error)

	Echo(ctx context.Context, req types.EchoRequest) (types.EchoResponse, error)
}
