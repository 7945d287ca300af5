// Package api serves a ports.SCU over the SCU wire protocol. Together with
// scu.Memory it forms a local simulator to point devices at.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sculink/internal/ports"
	"sculink/internal/scu"
	"sculink/internal/types"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

const maxBodySize = 16 << 20

type Handler struct {
	SCU ports.SCU
}

func NewHandler(device ports.SCU) *Handler {
	return &Handler{SCU: device}
}

func route(path string) string {
	return "/" + types.SCUAPIVersionPrefix + "/" + path
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(route(scu.PathStartTransaction), post(h.SCU.StartTransaction))
	mux.HandleFunc(route(scu.PathUpdateTransaction), post(h.SCU.UpdateTransaction))
	mux.HandleFunc(route(scu.PathFinishTransaction), post(h.SCU.FinishTransaction))
	mux.HandleFunc(route(scu.PathTseInfo), get(h.SCU.TseInfo))
	mux.HandleFunc(route(scu.PathTseState), post(h.SCU.SetTseState))
	mux.HandleFunc(route(scu.PathRegisterClientID), post(h.SCU.RegisterClientID))
	mux.HandleFunc(route(scu.PathUnregisterClientID), post(h.SCU.UnregisterClientID))
	mux.HandleFunc(route(scu.PathExecuteSetTseTime), command(h.SCU.ExecuteSetTseTime))
	mux.HandleFunc(route(scu.PathExecuteSelfTest), command(h.SCU.ExecuteSelfTest))
	mux.HandleFunc(route(scu.PathStartExportSession), post(h.SCU.StartExportSession))
	mux.HandleFunc(route(scu.PathStartExportSessionByTimeStamp), post(h.SCU.StartExportSessionByTimeStamp))
	mux.HandleFunc(route(scu.PathStartExportSessionByTransaction), post(h.SCU.StartExportSessionByTransaction))
	mux.HandleFunc(route(scu.PathExportData), post(h.SCU.ExportData))
	mux.HandleFunc(route(scu.PathEndExportSession), post(h.SCU.EndExportSession))
	mux.HandleFunc(route(scu.PathEcho), post(h.SCU.Echo))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// post decodes the JSON body into Req and answers with fn's response.
func post[Req, Resp any](fn func(context.Context, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read error")
			return
		}
		defer func() {
			_ = r.Body.Close()
		}()
		var req Req
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		resp, err := fn(r.Context(), req)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeOK(w, resp)
	}
}

func get[Resp any](fn func(context.Context) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		resp, err := fn(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeOK(w, resp)
	}
}

// command serves an operation without a response body.
func command(fn func(context.Context) error) http.HandlerFunc {
	return get(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

func writeOK(w http.ResponseWriter, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

// writeFailure answers with the status carried by err, or 500.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var se *types.StatusError
	if errors.As(err, &se) {
		code = se.StatusCode
	}
	log.WithError(err).WithFields(log.Fields{
		"path":   r.URL.Path,
		"status": code,
	}).Debug("scu operation failed")
	writeError(w, code, err.Error())
}

func writeError(w http.ResponseWriter, code int, message string) {
	if err := writeJSON(w, code, map[string]any{"Message": message}); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}
