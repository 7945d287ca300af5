// Package scu talks to a Signature Creation Unit over its versioned JSON API.
package scu

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sculink/internal/ports"
	"sculink/internal/types"
	"strings"

	"github.com/goccy/go-json"
)

// Endpoint paths below /v1/.
const (
	PathStartTransaction                = "starttransaction"
	PathUpdateTransaction               = "updatetransaction"
	PathFinishTransaction               = "finishtransaction"
	PathTseInfo                         = "tseinfo"
	PathTseState                        = "tsestate"
	PathRegisterClientID                = "registerclientid"
	PathUnregisterClientID              = "unregisterclientid"
	PathExecuteSetTseTime               = "executesettsetime"
	PathExecuteSelfTest                 = "executeselftest"
	PathStartExportSession              = "startexportsession"
	PathStartExportSessionByTimeStamp   = "startexportsessionbytimestamp"
	PathStartExportSessionByTransaction = "startexportsessionbytransaction"
	PathExportData                      = "exportdata"
	PathEndExportSession                = "endexportsession"
	PathEcho                            = "echo"
)

// Client issues one HTTP request per operation against
// `{base}/v1/{path}`, using whatever client the provider currently hands out.
type Client struct {
	baseURL string
	clients ports.HTTPClientProvider
}

var _ ports.SCU = (*Client)(nil)

func NewClient(baseURL string, clients ports.HTTPClientProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		clients: clients,
	}
}

// URL returns the absolute address of an operation path.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + types.SCUAPIVersionPrefix + "/" + path
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return types.Err(types.ErrInvalidInput, err, "encode %s request", path)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return types.Err(types.ErrRequestFailed, err, "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.clients.Client().Do(req)
	if err != nil {
		return types.Err(types.ErrRequestFailed, err, "%s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Err(types.ErrRequestFailed, err, "read %s response", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Err(&types.StatusError{StatusCode: resp.StatusCode, Detail: errorDetail(b)}, nil, "%s %s", method, path)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return types.Err(types.ErrMalformedResponse, err, "decode %s response", path)
	}
	return nil
}

func (c *Client) StartTransaction(ctx context.Context, req types.StartTransactionRequest) (resp types.StartTransactionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathStartTransaction, req, &resp)
	return
}

func (c *Client) UpdateTransaction(ctx context.Context, req types.UpdateTransactionRequest) (resp types.UpdateTransactionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathUpdateTransaction, req, &resp)
	return
}

func (c *Client) FinishTransaction(ctx context.Context, req types.FinishTransactionRequest) (resp types.FinishTransactionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathFinishTransaction, req, &resp)
	return
}

func (c *Client) TseInfo(ctx context.Context) (info types.TseInfo, err error) {
	err = c.do(ctx, http.MethodGet, PathTseInfo, nil, &info)
	return
}

func (c *Client) SetTseState(ctx context.Context, state types.TseState) (out types.TseState, err error) {
	err = c.do(ctx, http.MethodPost, PathTseState, state, &out)
	return
}

func (c *Client) RegisterClientID(ctx context.Context, req types.RegisterClientIDRequest) (resp types.RegisterClientIDResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathRegisterClientID, req, &resp)
	return
}

func (c *Client) UnregisterClientID(ctx context.Context, req types.UnregisterClientIDRequest) (resp types.UnregisterClientIDResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathUnregisterClientID, req, &resp)
	return
}

func (c *Client) ExecuteSetTseTime(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PathExecuteSetTseTime, nil, nil)
}

func (c *Client) ExecuteSelfTest(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PathExecuteSelfTest, nil, nil)
}

func (c *Client) StartExportSession(ctx context.Context, req types.StartExportSessionRequest) (resp types.StartExportSessionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathStartExportSession, req, &resp)
	return
}

func (c *Client) StartExportSessionByTimeStamp(ctx context.Context, req types.StartExportSessionByTimeStampRequest) (resp types.StartExportSessionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathStartExportSessionByTimeStamp, req, &resp)
	return
}

func (c *Client) StartExportSessionByTransaction(ctx context.Context, req types.StartExportSessionByTransactionRequest) (resp types.StartExportSessionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathStartExportSessionByTransaction, req, &resp)
	return
}

func (c *Client) ExportData(ctx context.Context, req types.ExportDataRequest) (resp types.ExportDataResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathExportData, req, &resp)
	return
}

func (c *Client) EndExportSession(ctx context.Context, req types.EndExportSessionRequest) (resp types.EndExportSessionResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathEndExportSession, req, &resp)
	return
}

func (c *Client) Echo(ctx context.Context, req types.EchoRequest) (resp types.EchoResponse, err error) {
	err = c.do(ctx, http.MethodPost, PathEcho, req, &resp)
	return
}
