package types

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is a point in time as exchanged with the SCU. Values without a
// zone designator are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
}

func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t.UTC()} }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

type SignatureData struct {
	SignatureCounter   uint64 `json:"SignatureCounter"`
	SignatureAlgorithm string `json:"SignatureAlgorithm"`
	SignatureBase64    string `json:"SignatureBase64"`
	PublicKeyBase64    string `json:"PublicKeyBase64"`
}

type StartTransactionRequest struct {
	ClientID          string `json:"ClientId"`
	ProcessType       string `json:"ProcessType"`
	ProcessDataBase64 string `json:"ProcessDataBase64"`
	QueueItemID       string `json:"QueueItemId"`
	IsRetry           bool   `json:"IsRetry"`
}

type StartTransactionResponse struct {
	TransactionNumber    uint64        `json:"TransactionNumber"`
	TimeStamp            Timestamp     `json:"TimeStamp"`
	TseSerialNumberOctet string        `json:"TseSerialNumberOctet"`
	ClientID             string        `json:"ClientId"`
	SignatureData        SignatureData `json:"SignatureData"`
}

type UpdateTransactionRequest struct {
	ClientID          string `json:"ClientId"`
	TransactionNumber uint64 `json:"TransactionNumber"`
	ProcessType       string `json:"ProcessType"`
	ProcessDataBase64 string `json:"ProcessDataBase64"`
	QueueItemID       string `json:"QueueItemId"`
	IsRetry           bool   `json:"IsRetry"`
}

type UpdateTransactionResponse struct {
	TransactionNumber    uint64        `json:"TransactionNumber"`
	TimeStamp            Timestamp     `json:"TimeStamp"`
	TseSerialNumberOctet string        `json:"TseSerialNumberOctet"`
	ClientID             string        `json:"ClientId"`
	ProcessType          string        `json:"ProcessType"`
	ProcessDataBase64    string        `json:"ProcessDataBase64"`
	SignatureData        SignatureData `json:"SignatureData"`
}

type FinishTransactionRequest struct {
	ClientID          string `json:"ClientId"`
	TransactionNumber uint64 `json:"TransactionNumber"`
	ProcessType       string `json:"ProcessType"`
	ProcessDataBase64 string `json:"ProcessDataBase64"`
	QueueItemID       string `json:"QueueItemId"`
	IsRetry           bool   `json:"IsRetry"`
}

type FinishTransactionResponse struct {
	TransactionNumber         uint64        `json:"TransactionNumber"`
	StartTransactionTimeStamp Timestamp     `json:"StartTransactionTimeStamp"`
	TimeStamp                 Timestamp     `json:"TimeStamp"`
	TseTimeStampFormat        string        `json:"TseTimeStampFormat"`
	TseSerialNumberOctet      string        `json:"TseSerialNumberOctet"`
	ClientID                  string        `json:"ClientId"`
	ProcessType               string        `json:"ProcessType"`
	ProcessDataBase64         string        `json:"ProcessDataBase64"`
	SignatureData             SignatureData `json:"SignatureData"`
}

// TseInfo is the device-info record returned by `tseinfo`.
type TseInfo struct {
	MaxNumberOfClients                 int64       `json:"MaxNumberOfClients"`
	CurrentNumberOfClients             int64       `json:"CurrentNumberOfClients"`
	CurrentClientIDs                   []string    `json:"CurrentClientIds"`
	MaxNumberOfStartedTransactions     int64       `json:"MaxNumberOfStartedTransactions"`
	CurrentNumberOfStartedTransactions int64       `json:"CurrentNumberOfStartedTransactions"`
	CurrentStartedTransactionNumbers   []uint64    `json:"CurrentStartedTransactionNumbers"`
	MaxNumberOfSignatures              int64       `json:"MaxNumberOfSignatures"`
	CurrentNumberOfSignatures          int64       `json:"CurrentNumberOfSignatures"`
	MaxLogMemorySize                   int64       `json:"MaxLogMemorySize"`
	CurrentLogMemorySize               int64       `json:"CurrentLogMemorySize"`
	CurrentState                       DeviceState `json:"CurrentState"`
	FirmwareIdentification             string      `json:"FirmwareIdentification"`
	CertificationIdentification        string      `json:"CertificationIdentification"`
	SignatureAlgorithm                 string      `json:"SignatureAlgorithm"`
	LogTimeFormat                      string      `json:"LogTimeFormat"`
	SerialNumberOctet                  string      `json:"SerialNumberOctet"`
	PublicKeyBase64                    string      `json:"PublicKeyBase64"`
	CertificatesBase64                 []string    `json:"CertificatesBase64"`
}

type TseState struct {
	CurrentState DeviceState `json:"CurrentState"`
}

type RegisterClientIDRequest struct {
	ClientID string `json:"ClientId"`
}

type RegisterClientIDResponse struct {
	ClientIDs []string `json:"ClientIds"`
}

type UnregisterClientIDRequest struct {
	ClientID string `json:"ClientId"`
}

type UnregisterClientIDResponse struct {
	ClientIDs []string `json:"ClientIds"`
}

type StartExportSessionRequest struct {
	ClientID string `json:"ClientId"`
	Erase    bool   `json:"Erase"`
}

type StartExportSessionByTimeStampRequest struct {
	ClientID string    `json:"ClientId"`
	From     Timestamp `json:"From"`
	To       Timestamp `json:"To"`
}

type StartExportSessionByTransactionRequest struct {
	ClientID string `json:"ClientId"`
	From     uint64 `json:"From"`
	To       uint64 `json:"To"`
}

type StartExportSessionResponse struct {
	TokenID              string `json:"TokenId"`
	TseSerialNumberOctet string `json:"TseSerialNumberOctet"`
}

type ExportDataRequest struct {
	TokenID      string `json:"TokenId"`
	MaxChunkSize int32  `json:"MaxChunkSize"`
}

type ExportDataResponse struct {
	TokenID                   string `json:"TokenId"`
	TarFileByteChunkBase64    string `json:"TarFileByteChunkBase64"`
	TarFileEndOfFile          bool   `json:"TarFileEndOfFile"`
	TotalTarFileSizeAvailable bool   `json:"TotalTarFileSizeAvailable"`
	TotalTarFileSize          int64  `json:"TotalTarFileSize"`
}

type EndExportSessionRequest struct {
	TokenID              string `json:"TokenId"`
	Sha256ChecksumBase64 string `json:"Sha256ChecksumBase64"`
	Erase                bool   `json:"Erase"`
}

type EndExportSessionResponse struct {
	TokenID  string `json:"TokenId"`
	IsValid  bool   `json:"IsValid"`
	IsErased bool   `json:"IsErased"`
}

type EchoRequest struct {
	Message string `json:"Message"`
}

type EchoResponse struct {
	Message string `json:"Message"`
}
