package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

func encodeBody(obj interface{}) (io.Reader, error) {
	buffer := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buffer).Encode(obj); err != nil {
		return nil, err
	}
	return buffer, nil
}

func decodeBody(body io.ReadCloser, out interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, obj interface{}) {
	body, err := encodeBody(obj)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.Copy(w, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
