package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"safe-rescue/safe-common/errs"

	"github.com/gorilla/mux"
)

// MaxBodyBytes request bodies above this size are rejected
const MaxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteOK[T any](w http.ResponseWriter, v T) {
	WriteJSON(w, http.StatusOK, Ok(v))
}

func WriteCreated[T any](w http.ResponseWriter, v T) {
	WriteJSON(w, http.StatusCreated, OkMessage("created", v))
}

// WriteList answers 204 for an empty list and 200 otherwise
func WriteList[T any](w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteJSON(w, http.StatusOK, Ok(items))
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ReadJSON decodes the request body into out. An empty body or a JSON null leaves
// out untouched so the caller can reject it as a missing entity.
func ReadJSON(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return errs.Invalid("could not read body: %v", err)
	}
	if len(body) > MaxBodyBytes {
		return errs.Invalid("body exceeds %d bytes", MaxBodyBytes)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Invalid("invalid body: %v", err)
	}
	return nil
}

// PathID parses a positive int64 route variable
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("%s must be a positive integer", name)
	}
	return id, nil
}

// PathString returns a raw route variable
func PathString(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}
