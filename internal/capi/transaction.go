package capi

import (
	"context"
	"math"
	"sculink/internal/ffi"
	"sculink/internal/flow"
	"sculink/internal/ports"
	"sculink/internal/retcode"
	"sculink/internal/types"
)

// TransactionInput is the caller side of a start, update or finish call.
// AdditionalData is accepted but not transmitted; the SCU has no field for it.
type TransactionInput struct {
	ClientID          string
	TransactionNumber uint32
	ProcessType       string
	ProcessData       []byte
	AdditionalData    []byte
}

// TransactionOutput holds the caller's output slots. Any of them may be nil.
type TransactionOutput struct {
	TransactionNumber *uint32
	LogTime           *int64
	SerialNumber      Buffer
	SignatureCounter  *uint32
	Signature         Buffer
}

func (o TransactionOutput) write(s flow.Signed) {
	ffi.Set(o.TransactionNumber, uint32(s.TransactionNumber))
	ffi.Set(o.LogTime, s.LogTime)
	o.SerialNumber.setString(s.SerialNumber)
	ffi.Set(o.SignatureCounter, uint32(s.SignatureCounter))
	o.Signature.setBytes(s.Signature)
}

// checkWidth rejects answers that cannot be represented in the 32-bit outputs.
func checkWidth(s flow.Signed) error {
	if s.TransactionNumber > math.MaxUint32 {
		return types.Err(types.ErrMalformedResponse, nil, "transaction number %d exceeds 32 bits", s.TransactionNumber)
	}
	if s.SignatureCounter > math.MaxUint32 {
		return types.Err(types.ErrMalformedResponse, nil, "signature counter %d exceeds 32 bits", s.SignatureCounter)
	}
	return nil
}

type transactionStep func(ctx context.Context, s ports.SCU, in TransactionInput) (flow.Signed, error)

func (a *Adapter) transaction(ctx context.Context, op, device string, unsuccessful retcode.Code, step transactionStep, in TransactionInput, out TransactionOutput) retcode.Code {
	return a.call(op, device, unsuccessful, func(s ports.SCU) error {
		if in.ClientID == "" {
			return types.Err(types.ErrMissingParameter, nil, "client id")
		}
		signed, err := step(ctx, s, in)
		if err != nil {
			return err
		}
		if err := checkWidth(signed); err != nil {
			return err
		}
		out.write(signed)
		return nil
	})
}

// StartTransaction writes TransactionNumber, LogTime, SerialNumber,
// SignatureCounter and Signature.
func (a *Adapter) StartTransaction(ctx context.Context, device string, in TransactionInput, out TransactionOutput) retcode.Code {
	return a.transaction(ctx, "startTransaction", device, retcode.StartTransactionFailed,
		func(ctx context.Context, s ports.SCU, in TransactionInput) (flow.Signed, error) {
			return flow.StartTransaction(ctx, s, in.ClientID, in.ProcessType, in.ProcessData)
		}, in, out)
}

// UpdateTransaction writes LogTime, SignatureCounter and Signature.
func (a *Adapter) UpdateTransaction(ctx context.Context, device string, in TransactionInput, out TransactionOutput) retcode.Code {
	out.TransactionNumber = nil
	out.SerialNumber = Buffer{}
	return a.transaction(ctx, "updateTransaction", device, retcode.UpdateTransactionFailed,
		func(ctx context.Context, s ports.SCU, in TransactionInput) (flow.Signed, error) {
			return flow.UpdateTransaction(ctx, s, in.ClientID, uint64(in.TransactionNumber), in.ProcessType, in.ProcessData)
		}, in, out)
}

// FinishTransaction writes LogTime, SignatureCounter and Signature.
func (a *Adapter) FinishTransaction(ctx context.Context, device string, in TransactionInput, out TransactionOutput) retcode.Code {
	out.TransactionNumber = nil
	out.SerialNumber = Buffer{}
	return a.transaction(ctx, "finishTransaction", device, retcode.FinishTransactionFailed,
		func(ctx context.Context, s ports.SCU, in TransactionInput) (flow.Signed, error) {
			return flow.FinishTransaction(ctx, s, in.ClientID, uint64(in.TransactionNumber), in.ProcessType, in.ProcessData)
		}, in, out)
}
