package scu

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"sculink/internal/ports"
	"sculink/internal/types"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	memoryMaxClients      = 100
	memoryMaxTransactions = 512
)

// Memory is an in-process SCU. It keeps just enough state to answer every
// operation consistently and is used in tests and by the simulator.
type Memory struct {
	mu sync.Mutex

	Serial        string
	PublicKey     []byte
	Certificates  [][]byte
	Algorithm     string
	LogTimeFormat string
	Firmware      string
	Archive       []byte

	state      types.DeviceState
	clients    []string
	nextTx     uint64
	open       map[uint64]string
	signatures uint64
	sessions   map[string]*memorySession
	failures   map[string]error
	now        func() time.Time
}

type memorySession struct {
	data   []byte
	offset int
	erase  bool
}

var _ ports.SCU = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		Serial:        "SCULINK-MEMORY-0001",
		PublicKey:     []byte("memory-public-key"),
		Certificates:  [][]byte{[]byte("memory-certificate")},
		Algorithm:     "ecdsa-plain-SHA384",
		LogTimeFormat: "unixTime",
		Firmware:      "memory",
		state:         types.DeviceStateInitialized,
		nextTx:        1,
		open:          map[uint64]string{},
		sessions:      map[string]*memorySession{},
		failures:      map[string]error{},
		now:           time.Now,
	}
}

// Fail makes the operation at path return err until cleared with a nil err.
func (m *Memory) Fail(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, path)
		return
	}
	m.failures[path] = err
}

// SetState forces the device state.
func (m *Memory) SetState(state types.DeviceState) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

func (m *Memory) failure(path string) error {
	return m.failures[path]
}

func (m *Memory) sign(data ...[]byte) types.SignatureData {
	m.signatures++
	h := sha256.New()
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], m.signatures)
	h.Write(ctr[:])
	for _, d := range data {
		h.Write(d)
	}
	return types.SignatureData{
		SignatureCounter:   m.signatures,
		SignatureAlgorithm: m.Algorithm,
		SignatureBase64:    base64.StdEncoding.EncodeToString(h.Sum(nil)),
		PublicKeyBase64:    base64.StdEncoding.EncodeToString(m.PublicKey),
	}
}

func notFound(format string, args ...any) error {
	return &types.StatusError{StatusCode: 404, Detail: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return &types.StatusError{StatusCode: 409, Detail: fmt.Sprintf(format, args...)}
}

func (m *Memory) StartTransaction(_ context.Context, req types.StartTransactionRequest) (types.StartTransactionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathStartTransaction); err != nil {
		return types.StartTransactionResponse{}, err
	}
	if m.state != types.DeviceStateInitialized {
		return types.StartTransactionResponse{}, conflict("device is %s", m.state)
	}
	if len(m.open) >= memoryMaxTransactions {
		return types.StartTransactionResponse{}, conflict("too many open transactions")
	}
	tx := m.nextTx
	m.nextTx++
	m.open[tx] = req.ClientID
	return types.StartTransactionResponse{
		TransactionNumber:    tx,
		TimeStamp:            types.NewTimestamp(m.now()),
		TseSerialNumberOctet: m.Serial,
		ClientID:             req.ClientID,
		SignatureData:        m.sign([]byte(req.ProcessType), []byte(req.ProcessDataBase64)),
	}, nil
}

func (m *Memory) UpdateTransaction(_ context.Context, req types.UpdateTransactionRequest) (types.UpdateTransactionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathUpdateTransaction); err != nil {
		return types.UpdateTransactionResponse{}, err
	}
	if _, ok := m.open[req.TransactionNumber]; !ok {
		return types.UpdateTransactionResponse{}, notFound("transaction %d is not open", req.TransactionNumber)
	}
	return types.UpdateTransactionResponse{
		TransactionNumber:    req.TransactionNumber,
		TimeStamp:            types.NewTimestamp(m.now()),
		TseSerialNumberOctet: m.Serial,
		ClientID:             req.ClientID,
		ProcessType:          req.ProcessType,
		ProcessDataBase64:    req.ProcessDataBase64,
		SignatureData:        m.sign([]byte(req.ProcessType), []byte(req.ProcessDataBase64)),
	}, nil
}

func (m *Memory) FinishTransaction(_ context.Context, req types.FinishTransactionRequest) (types.FinishTransactionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathFinishTransaction); err != nil {
		return types.FinishTransactionResponse{}, err
	}
	if _, ok := m.open[req.TransactionNumber]; !ok {
		return types.FinishTransactionResponse{}, notFound("transaction %d is not open", req.TransactionNumber)
	}
	delete(m.open, req.TransactionNumber)
	now := m.now()
	return types.FinishTransactionResponse{
		TransactionNumber:         req.TransactionNumber,
		StartTransactionTimeStamp: types.NewTimestamp(now),
		TimeStamp:                 types.NewTimestamp(now),
		TseTimeStampFormat:        m.LogTimeFormat,
		TseSerialNumberOctet:      m.Serial,
		ClientID:                  req.ClientID,
		ProcessType:               req.ProcessType,
		ProcessDataBase64:         req.ProcessDataBase64,
		SignatureData:             m.sign([]byte(req.ProcessType), []byte(req.ProcessDataBase64)),
	}, nil
}

func (m *Memory) TseInfo(_ context.Context) (types.TseInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathTseInfo); err != nil {
		return types.TseInfo{}, err
	}
	open := make([]uint64, 0, len(m.open))
	for tx := range m.open {
		open = append(open, tx)
	}
	slices.Sort(open)
	certs := make([]string, 0, len(m.Certificates))
	for _, c := range m.Certificates {
		certs = append(certs, base64.StdEncoding.EncodeToString(c))
	}
	return types.TseInfo{
		MaxNumberOfClients:                 memoryMaxClients,
		CurrentNumberOfClients:             int64(len(m.clients)),
		CurrentClientIDs:                   slices.Clone(m.clients),
		MaxNumberOfStartedTransactions:     memoryMaxTransactions,
		CurrentNumberOfStartedTransactions: int64(len(open)),
		CurrentStartedTransactionNumbers:   open,
		MaxNumberOfSignatures:              -1,
		CurrentNumberOfSignatures:          int64(m.signatures),
		MaxLogMemorySize:                   -1,
		CurrentLogMemorySize:               int64(len(m.Archive)),
		CurrentState:                       m.state,
		FirmwareIdentification:             m.Firmware,
		CertificationIdentification:        "BSI-K-TR-0000-0000",
		SignatureAlgorithm:                 m.Algorithm,
		LogTimeFormat:                      m.LogTimeFormat,
		SerialNumberOctet:                  m.Serial,
		PublicKeyBase64:                    base64.StdEncoding.EncodeToString(m.PublicKey),
		CertificatesBase64:                 certs,
	}, nil
}

func (m *Memory) SetTseState(_ context.Context, state types.TseState) (types.TseState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathTseState); err != nil {
		return types.TseState{}, err
	}
	if m.state == types.DeviceStateTerminated && state.CurrentState != types.DeviceStateTerminated {
		return types.TseState{}, conflict("device is terminated")
	}
	m.state = state.CurrentState
	return types.TseState{CurrentState: m.state}, nil
}

func (m *Memory) RegisterClientID(_ context.Context, req types.RegisterClientIDRequest) (types.RegisterClientIDResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathRegisterClientID); err != nil {
		return types.RegisterClientIDResponse{}, err
	}
	if req.ClientID == "" {
		return types.RegisterClientIDResponse{}, &types.StatusError{StatusCode: 400, Detail: "ClientId is required"}
	}
	if !slices.Contains(m.clients, req.ClientID) {
		if len(m.clients) >= memoryMaxClients {
			return types.RegisterClientIDResponse{}, conflict("client limit reached")
		}
		m.clients = append(m.clients, req.ClientID)
	}
	return types.RegisterClientIDResponse{ClientIDs: slices.Clone(m.clients)}, nil
}

func (m *Memory) UnregisterClientID(_ context.Context, req types.UnregisterClientIDRequest) (types.UnregisterClientIDResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathUnregisterClientID); err != nil {
		return types.UnregisterClientIDResponse{}, err
	}
	i := slices.Index(m.clients, req.ClientID)
	if i < 0 {
		return types.UnregisterClientIDResponse{}, notFound("client %q is not registered", req.ClientID)
	}
	m.clients = slices.Delete(m.clients, i, i+1)
	return types.UnregisterClientIDResponse{ClientIDs: slices.Clone(m.clients)}, nil
}

func (m *Memory) ExecuteSetTseTime(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failure(PathExecuteSetTseTime)
}

func (m *Memory) ExecuteSelfTest(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failure(PathExecuteSelfTest)
}

func (m *Memory) startSession(path string, erase bool) (types.StartExportSessionResponse, error) {
	if err := m.failure(path); err != nil {
		return types.StartExportSessionResponse{}, err
	}
	token := uuid.NewString()
	m.sessions[token] = &memorySession{data: slices.Clone(m.Archive), erase: erase}
	return types.StartExportSessionResponse{
		TokenID:              token,
		TseSerialNumberOctet: m.Serial,
	}, nil
}

func (m *Memory) StartExportSession(_ context.Context, req types.StartExportSessionRequest) (types.StartExportSessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startSession(PathStartExportSession, req.Erase)
}

func (m *Memory) StartExportSessionByTimeStamp(_ context.Context, req types.StartExportSessionByTimeStampRequest) (types.StartExportSessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if req.To.Before(req.From.Time) {
		return types.StartExportSessionResponse{}, &types.StatusError{StatusCode: 400, Detail: "To precedes From"}
	}
	return m.startSession(PathStartExportSessionByTimeStamp, false)
}

func (m *Memory) StartExportSessionByTransaction(_ context.Context, req types.StartExportSessionByTransactionRequest) (types.StartExportSessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if req.To < req.From {
		return types.StartExportSessionResponse{}, &types.StatusError{StatusCode: 400, Detail: "To precedes From"}
	}
	return m.startSession(PathStartExportSessionByTransaction, false)
}

func (m *Memory) ExportData(_ context.Context, req types.ExportDataRequest) (types.ExportDataResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathExportData); err != nil {
		return types.ExportDataResponse{}, err
	}
	sess, ok := m.sessions[req.TokenID]
	if !ok {
		return types.ExportDataResponse{}, notFound("unknown token %q", req.TokenID)
	}
	size := int(req.MaxChunkSize)
	if size <= 0 {
		size = len(sess.data)
	}
	end := min(sess.offset+size, len(sess.data))
	chunk := sess.data[sess.offset:end]
	sess.offset = end
	return types.ExportDataResponse{
		TokenID:                   req.TokenID,
		TarFileByteChunkBase64:    base64.StdEncoding.EncodeToString(chunk),
		TarFileEndOfFile:          sess.offset >= len(sess.data),
		TotalTarFileSizeAvailable: true,
		TotalTarFileSize:          int64(len(sess.data)),
	}, nil
}

func (m *Memory) EndExportSession(_ context.Context, req types.EndExportSessionRequest) (types.EndExportSessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathEndExportSession); err != nil {
		return types.EndExportSessionResponse{}, err
	}
	sess, ok := m.sessions[req.TokenID]
	if !ok {
		return types.EndExportSessionResponse{}, notFound("unknown token %q", req.TokenID)
	}
	delete(m.sessions, req.TokenID)
	sum := sha256.Sum256(sess.data)
	valid := base64.StdEncoding.EncodeToString(sum[:]) == req.Sha256ChecksumBase64
	erased := valid && (req.Erase || sess.erase)
	if erased {
		m.Archive = nil
	}
	return types.EndExportSessionResponse{TokenID: req.TokenID, IsValid: valid, IsErased: erased}, nil
}

func (m *Memory) Echo(_ context.Context, req types.EchoRequest) (types.EchoResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(PathEcho); err != nil {
		return types.EchoResponse{}, err
	}
	return types.EchoResponse{Message: req.Message}, nil
}
