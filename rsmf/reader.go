package rsmf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jhillyerd/enmime"
)

// Attachment is one binary part of a read-back container.
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Container is the parsed form of a previously written output file.
// Body line endings are normalized back to \n so it compares directly
// against freshly rendered text.
type Container struct {
	envelope    *enmime.Envelope
	Body        string
	Attachments []Attachment
}

// Read parses a serialized container from r.
func Read(r io.Reader) (*Container, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return nil, fmt.Errorf("container cannot be read: %w", err)
	}

	c := &Container{
		envelope: env,
		Body:     strings.ReplaceAll(env.Text, "\r\n", "\n"),
	}
	for _, att := range env.Attachments {
		c.Attachments = append(c.Attachments, Attachment{
			FileName:    att.FileName,
			ContentType: att.ContentType,
			Content:     att.Content,
		})
	}
	return c, nil
}

// OpenFile reads the container at path.
func OpenFile(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("container cannot be read: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Header returns the first value of the given header, empty when absent.
func (c *Container) Header(name string) string {
	return c.envelope.GetHeader(name)
}

// HeaderValues returns every value of the given header, in wire order.
func (c *Container) HeaderValues(name string) []string {
	return c.envelope.GetHeaderValues(name)
}

// Zip returns the archive attachment, when present.
func (c *Container) Zip() (Attachment, bool) {
	for _, att := range c.Attachments {
		if att.FileName == ZipName {
			return att, true
		}
	}
	return Attachment{}, false
}
