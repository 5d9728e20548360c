package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"filmhay-backend/models"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

// WriteJSON encodes v with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// WriteError writes a message-only error body
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Message: msg})
}

// WriteValidationError writes a 400 carrying field errors
func WriteValidationError(w http.ResponseWriter, err *models.ValidationError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Message, Errors: err.Fields})
}

// ReadJSON decodes a single JSON document from the request body. Decode
// failures come back as *models.ValidationError so callers can answer 400.
// Unknown keys are ignored.
func ReadJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return models.NewValidationError("Request body must contain a single JSON value")
	}
	return nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return models.NewValidationError("Request body must not be empty")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return models.NewValidationError("Request body contains badly-formed JSON")
	case errors.As(err, &syntaxErr):
		return models.NewValidationError(fmt.Sprintf("Request body contains badly-formed JSON (at character %d)", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return models.NewValidationError("Request body must be a JSON object")
		}
		return &models.ValidationError{
			Message: "Invalid movie data",
			Fields:  []models.FieldError{{Field: field, Message: "must be of type " + typeName(typeErr)}},
		}
	case errors.As(err, &tooLarge):
		return models.NewValidationError("Request body must not be larger than 1MB")
	default:
		return models.NewValidationError("Request body contains invalid JSON: " + err.Error())
	}
}

func typeName(err *json.UnmarshalTypeError) string {
	if err.Type == nil {
		return "unknown"
	}
	switch k := err.Type.Kind().String(); k {
	case "int", "int32", "int64":
		return "integer"
	case "slice":
		return "array"
	default:
		return k
	}
}
