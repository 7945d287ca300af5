package capi

import (
	"context"
	"sculink/internal/flow"
	"sculink/internal/ports"
	"sculink/internal/retcode"
	"time"
)

// Export runs one export session and writes the archive. A session the SCU
// rejects at the end reports Unknown.
func (a *Adapter) Export(ctx context.Context, op, device string, filter flow.ExportFilter, out Buffer) retcode.Code {
	return a.call(op, device, retcode.Unknown, func(s ports.SCU) error {
		data, err := flow.Export(ctx, s, filter)
		if err != nil {
			return err
		}
		out.setBytes(data)
		return nil
	})
}

// ExportAll exports the whole archive, optionally for one client.
func ExportAll(clientID string) flow.ExportFilter {
	return flow.ExportFilter{Kind: flow.ExportAll, ClientID: clientID}
}

// ExportTransactions exports the transactions from..to inclusive.
func ExportTransactions(from, to uint32, clientID string) flow.ExportFilter {
	return flow.ExportFilter{
		Kind:     flow.ExportByTransaction,
		ClientID: clientID,
		FromTx:   uint64(from),
		ToTx:     uint64(to),
	}
}

// ExportPeriod exports the records logged between two unix times.
func ExportPeriod(from, to int64, clientID string) flow.ExportFilter {
	return flow.ExportFilter{
		Kind:     flow.ExportByTimeStamp,
		ClientID: clientID,
		From:     time.Unix(from, 0).UTC(),
		To:       time.Unix(to, 0).UTC(),
	}
}
