package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for request structs without their own Validate.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct, rejecting
// unknown fields so typos in payloads fail loudly instead of silently
// producing an empty patch.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidateRequest validates a decoded request struct. Types carrying their own
// Validate method are validated through it; everything else falls back to the
// struct tag validator.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
