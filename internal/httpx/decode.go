package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DecodeJSON reads the request body into dst. On failure it writes the error
// response and returns false: 413 when the body exceeded the size limit, 400
// otherwise.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		return false
	}
	JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
	return false
}
