package converter

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	contentTypeJSON    = "application/json; charset=utf-8"
	contentTypeMsgpack = "application/msgpack"
)

// wantsMsgpack reports whether the Accept header lists a msgpack media type.
func wantsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
			return true
		}
	}
	return false
}

// encodePayload serializes payload for r. Struct fields are named by their
// json tags in both encodings.
func encodePayload(r *http.Request, payload any) ([]byte, string, error) {
	if wantsMsgpack(r) {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(payload); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), contentTypeMsgpack, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(payload); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), contentTypeJSON, nil
}

func (s *service) writePayload(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, contentType, err := encodePayload(r, payload)
	if err != nil {
		s.logf(r, "encode response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Add("Vary", "Accept")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
