package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextHTML  MIME = "text/html"
	TextCSS   MIME = "text/css"

	ApplicationPDF         MIME = "application/pdf"
	ApplicationJSON        MIME = "application/json"
	ApplicationXML         MIME = "application/xml"
	ApplicationZIP         MIME = "application/zip"
	ApplicationOctetStream MIME = "application/octet-stream"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Detect sniffs a content type from the leading bytes of a file.
// Callers usually pass the first 64 bytes (magic bytes); charset
// parameters reported by the sniffer are stripped.
func Detect(magic []byte) MIME {
	detected := mimetype.Detect(magic).String()
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}

func ToMIME(s string) MIME {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return Unknown
	}
	return MIME(mt)
}
