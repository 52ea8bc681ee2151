// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const ContentTypeJSON = "application/json"

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. It returns the number of body bytes written.
//
// If marshaling fails, nothing but a plain 500 is written and the error is
// returned.
//
//	WriteJSON(w, models.ErrorResponse{Detail: "boom"}, http.StatusInternalServerError)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
