package flow

import (
	"context"
	"encoding/base64"
	"sculink/internal/ports"
	"sculink/internal/types"
)

// Signed is the part of a transaction answer handed back to the caller.
type Signed struct {
	TransactionNumber uint64
	LogTime           int64
	SerialNumber      string
	SignatureCounter  uint64
	Signature         []byte
}

// StartTransaction opens a transaction for clientID. Every call carries a new
// queue item id and IsRetry=false.
func StartTransaction(ctx context.Context, scu ports.SCU, clientID, processType string, processData []byte) (Signed, error) {
	resp, err := scu.StartTransaction(ctx, types.StartTransactionRequest{
		ClientID:          clientID,
		ProcessType:       processType,
		ProcessDataBase64: base64.StdEncoding.EncodeToString(processData),
		QueueItemID:       NewQueueItemID(),
	})
	if err != nil {
		return Signed{}, err
	}
	return signed(resp.TransactionNumber, resp.TimeStamp, resp.TseSerialNumberOctet, resp.SignatureData)
}

func UpdateTransaction(ctx context.Context, scu ports.SCU, clientID string, tx uint64, processType string, processData []byte) (Signed, error) {
	resp, err := scu.UpdateTransaction(ctx, types.UpdateTransactionRequest{
		ClientID:          clientID,
		TransactionNumber: tx,
		ProcessType:       processType,
		ProcessDataBase64: base64.StdEncoding.EncodeToString(processData),
		QueueItemID:       NewQueueItemID(),
	})
	if err != nil {
		return Signed{}, err
	}
	return signed(resp.TransactionNumber, resp.TimeStamp, resp.TseSerialNumberOctet, resp.SignatureData)
}

func FinishTransaction(ctx context.Context, scu ports.SCU, clientID string, tx uint64, processType string, processData []byte) (Signed, error) {
	resp, err := scu.FinishTransaction(ctx, types.FinishTransactionRequest{
		ClientID:          clientID,
		TransactionNumber: tx,
		ProcessType:       processType,
		ProcessDataBase64: base64.StdEncoding.EncodeToString(processData),
		QueueItemID:       NewQueueItemID(),
	})
	if err != nil {
		return Signed{}, err
	}
	return signed(resp.TransactionNumber, resp.TimeStamp, resp.TseSerialNumberOctet, resp.SignatureData)
}

// signed decodes the signature up front so that a bad answer fails the whole
// call. The serial number is passed through as sent.
func signed(tx uint64, ts types.Timestamp, serial string, sd types.SignatureData) (Signed, error) {
	sig, err := DecodeBase64(sd.SignatureBase64, "SignatureBase64")
	if err != nil {
		return Signed{}, err
	}
	return Signed{
		TransactionNumber: tx,
		LogTime:           ts.Unix(),
		SerialNumber:      serial,
		SignatureCounter:  sd.SignatureCounter,
		Signature:         sig,
	}, nil
}

// DecodeBase64 decodes a base64 field of an SCU answer.
func DecodeBase64(s, field string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, types.Err(types.ErrMalformedResponse, err, "field %s", field)
	}
	return b, nil
}
