package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// DoJSON sends a JSON request. If token is non-empty, it is passed as a Bearer header.
func DoJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with an optional Bearer token.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil, token)
}

// ErrorMessage extracts the server's {"error": "..."} body, if present.
func ErrorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}
