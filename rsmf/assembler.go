package rsmf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"unicode"

	"rsmf-lab/archive"
	errs "rsmf-lab/errors"
)

// ZipName is the attachment entry name every consumer looks for.
const ZipName = "rsmf.zip"

const base64LineLength = 76

// Message is a fully assembled container, ready to serialize.
type Message struct {
	headers Headers
	body    string
	archive *archive.Archive
}

// Assemble combines headers, body text, and the archive into one
// container and normalizes the headers to 7-bit form. Values carrying
// control characters cannot be represented in the container format and
// fail here, before any serialization starts.
func Assemble(headers Headers, body string, ar *archive.Archive) (*Message, error) {
	if ar == nil {
		return nil, fmt.Errorf("%w: no archive attached", errs.ErrSerialization)
	}

	normalized := make(Headers, 0, len(headers))
	for _, h := range headers {
		if err := checkHeaderName(h.Name); err != nil {
			return nil, err
		}
		value, err := normalizeHeaderValue(h.Name, h.Value)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, Header{Name: h.Name, Value: value})
	}

	return &Message{
		headers: normalized,
		body:    body,
		archive: ar,
	}, nil
}

// Headers returns the normalized header set in wire order.
func (m *Message) Headers() Headers {
	return m.headers
}

func (m *Message) Body() string {
	return m.body
}

// Serialize lays the container out as a MIME message: the custom headers
// in wire order, then a multipart/mixed payload where the quoted-printable
// text body part always precedes the base64 archive part. The part order
// is a format requirement.
func (m *Message) Serialize() ([]byte, error) {
	var buf bytes.Buffer

	for _, h := range m.headers {
		buf.WriteString(h.Name)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString("\r\n")
	}

	mw := multipart.NewWriter(&buf)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", mw.Boundary())
	buf.WriteString("\r\n")

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", "text/plain; charset=utf-8")
	bodyHeader.Set("Content-Transfer-Encoding", "quoted-printable")
	bodyPart, err := mw.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: body part: %v", errs.ErrSerialization, err)
	}
	qp := quotedprintable.NewWriter(bodyPart)
	if _, err := qp.Write([]byte(m.body)); err != nil {
		return nil, fmt.Errorf("%w: body encoding: %v", errs.ErrSerialization, err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("%w: body encoding: %v", errs.ErrSerialization, err)
	}

	zipHeader := textproto.MIMEHeader{}
	zipHeader.Set("Content-Type", "application/zip")
	zipHeader.Set("Content-Transfer-Encoding", "base64")
	zipHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ZipName))
	zipPart, err := mw.CreatePart(zipHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: archive part: %v", errs.ErrSerialization, err)
	}
	if err := writeBase64(zipPart, m.archive.Data); err != nil {
		return nil, fmt.Errorf("%w: archive encoding: %v", errs.ErrSerialization, err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}

	return buf.Bytes(), nil
}

func checkHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty header name", errs.ErrSerialization)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c > unicode.MaxASCII || c == ':' {
			return fmt.Errorf("%w: header name %q is not a token", errs.ErrSerialization, name)
		}
	}
	return nil
}

// normalizeHeaderValue brings a value to 7-bit form. Control characters
// have no representable encoding inside a structured header and are
// rejected rather than silently stripped.
func normalizeHeaderValue(name, value string) (string, error) {
	if strings.ContainsAny(value, "\r\n\x00") {
		return "", fmt.Errorf("%w: header %s carries a control character", errs.ErrSerialization, name)
	}
	if isASCII(value) {
		return value, nil
	}
	return mime.QEncoding.Encode("utf-8", value), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// writeBase64 encodes data in lines of 76 characters, the classic
// transfer encoding layout.
func writeBase64(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := min(base64LineLength, len(encoded))
		if _, err := io.WriteString(w, encoded[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
