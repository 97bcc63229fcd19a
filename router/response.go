package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

var internalErrorBody = []byte(`{"error":"Internal Server Error"}`)

// encodeJSON encodes v without escaping <, > and &, so echoed
// paths read the same as they were requested.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// newJSONResponse encodes v as the response body. Encoding
// failures turn into a 500 response rather than an error.
func newJSONResponse(status int, v any) Response {
	body, err := encodeJSON(v)
	if err != nil {
		return newResponse(http.StatusInternalServerError, internalErrorBody)
	}

	return newResponse(status, body)
}

// newResponse creates a new response.
func newResponse(status int, body []byte) Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}
