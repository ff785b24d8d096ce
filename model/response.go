// Package model holds the JSON wire types of the HTTP API.
package model

// TryOnResponse carries the composed image back to the browser.
type TryOnResponse struct {
	RequestID string `json:"requestId"`
	// Source is "remote" when the generative service produced the image,
	// "compositor" for the local fallback pipeline.
	Source             string `json:"source"`
	MimeType           string `json:"mimeType"`
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
