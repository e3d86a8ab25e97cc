// Package rsmf assembles, serializes, and reads back the container
// message. Handles header derivation, MIME layout, and the output file.
// Does not build archives or timelines, it only packages them.
package rsmf

import (
	"mime"
	"net/mail"
	"strconv"

	"github.com/samber/lo"

	"rsmf-lab/domain/manifest"
	"rsmf-lab/transcript"
)

// Container header names.
const (
	HeaderVersion    = "X-RSMF-Version"
	HeaderGenerator  = "X-RSMF-Generator"
	HeaderFrom       = "From"
	HeaderTo         = "To"
	HeaderEventCount = "X-RSMF-EventCount"
	HeaderBeginDate  = "X-RSMF-BeginDate"
	HeaderEndDate    = "X-RSMF-EndDate"
)

// Header is one name/value pair. Order matters on the wire, so headers
// travel as a slice, never a map.
type Header struct {
	Name  string
	Value string
}

type Headers []Header

// Get returns the first value carrying the given name.
func (h Headers) Get(name string) (string, bool) {
	for _, hdr := range h {
		if hdr.Name == name {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values returns every value carrying the given name, in wire order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, hdr := range h {
		if hdr.Name == name {
			values = append(values, hdr.Value)
		}
	}
	return values
}

// Identity is a display name with an optional address.
type Identity struct {
	Display string
	Email   string
}

func (i Identity) Empty() bool {
	return i.Display == "" && i.Email == ""
}

// String renders "Display <email>" in RFC 5322 form, falling back to the
// bare display name when no address is set. Non-ASCII names come out as
// RFC 2047 encoded words, so the result is always 7-bit clean.
func (i Identity) String() string {
	if i.Email != "" {
		addr := mail.Address{Name: i.Display, Address: i.Email}
		return addr.String()
	}
	if i.Display != "" {
		return mime.QEncoding.Encode("utf-8", i.Display)
	}
	return ""
}

// BuildHeaders derives the container headers from the manifest and its
// timeline. Rules, in wire order:
//   - version and generator are always present
//   - From only when a custodian email is configured
//   - one To per participant, manifest order, duplicates preserved
//   - the event count only when the manifest carries an events list
//   - begin and end dates only when there is more than one event and the
//     edge event has a timestamp, each edge checked on its own
func BuildHeaders(m manifest.Manifest, tl *transcript.Timeline, generator string, custodian Identity) Headers {
	headers := Headers{
		{Name: HeaderVersion, Value: m.Version},
		{Name: HeaderGenerator, Value: generator},
	}

	if custodian.Email != "" {
		headers = append(headers, Header{Name: HeaderFrom, Value: custodian.String()})
	}

	headers = append(headers, lo.Map(m.Participants, func(p manifest.Participant, _ int) Header {
		return Header{Name: HeaderTo, Value: Identity{Display: p.Display, Email: p.Email}.String()}
	})...)

	if m.HasEvents() {
		headers = append(headers, Header{Name: HeaderEventCount, Value: strconv.Itoa(tl.Count())})
	}

	if tl.Count() > 1 {
		if first, ok := tl.First(); ok && first.Timestamp != "" {
			headers = append(headers, Header{Name: HeaderBeginDate, Value: first.Timestamp})
		}
		if last, ok := tl.Last(); ok && last.Timestamp != "" {
			headers = append(headers, Header{Name: HeaderEndDate, Value: last.Timestamp})
		}
	}

	return headers
}
