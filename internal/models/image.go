package models

// ImagePayload is an uploaded image in the portable encoding every adapter consumes.
type ImagePayload struct {
	Base64   string
	MimeType string
}

// DataURL renders the payload as an RFC 2397 data URL.
func (p ImagePayload) DataURL() string {
	return "data:" + p.MimeType + ";base64," + p.Base64
}
