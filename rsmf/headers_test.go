package rsmf

import (
	"testing"

	"rsmf-lab/domain/manifest"
	"rsmf-lab/transcript"

	"github.com/stretchr/testify/require"
)

func eventsOf(events ...manifest.Event) *[]manifest.Event {
	return &events
}

func headersFor(m manifest.Manifest, custodian Identity) Headers {
	return BuildHeaders(m, transcript.NewTimeline(m), "rsmf-lab", custodian)
}

func TestBuildHeaders_SortedDateRange(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Participants: []manifest.Participant{
			{ID: "a", Display: "Alice", Email: "alice@corp.com"},
			{ID: "b", Display: "Bob", Email: "bob@corp.com"},
		},
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-01-02T00:00:00Z", Body: "hi"},
			manifest.Event{Timestamp: "2023-01-01T00:00:00Z", Body: "hello"},
		),
	}

	headers := headersFor(m, Identity{})

	version, ok := headers.Get(HeaderVersion)
	req.True(ok)
	req.Equal("1.0", version)

	generator, ok := headers.Get(HeaderGenerator)
	req.True(ok)
	req.Equal("rsmf-lab", generator)

	count, ok := headers.Get(HeaderEventCount)
	req.True(ok)
	req.Equal("2", count)

	begin, ok := headers.Get(HeaderBeginDate)
	req.True(ok)
	req.Equal("2023-01-01T00:00:00Z", begin)

	end, ok := headers.Get(HeaderEndDate)
	req.True(ok)
	req.Equal("2023-01-02T00:00:00Z", end)

	req.Equal([]string{
		"\"Alice\" <alice@corp.com>",
		"\"Bob\" <bob@corp.com>",
	}, headers.Values(HeaderTo))

	_, ok = headers.Get(HeaderFrom)
	req.False(ok)
}

func TestBuildHeaders_NoEventsList(t *testing.T) {
	req := require.New(t)

	headers := headersFor(manifest.Manifest{Version: "1.0"}, Identity{})

	_, ok := headers.Get(HeaderEventCount)
	req.False(ok)
	_, ok = headers.Get(HeaderBeginDate)
	req.False(ok)
	_, ok = headers.Get(HeaderEndDate)
	req.False(ok)
}

func TestBuildHeaders_EmptyEventsListCountsZero(t *testing.T) {
	req := require.New(t)

	headers := headersFor(manifest.Manifest{Version: "1.0", Events: eventsOf()}, Identity{})

	count, ok := headers.Get(HeaderEventCount)
	req.True(ok)
	req.Equal("0", count)
}

func TestBuildHeaders_SingleEventHasNoDateRange(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Events:  eventsOf(manifest.Event{Timestamp: "2023-01-01T00:00:00Z", Body: "alone"}),
	}

	headers := headersFor(m, Identity{})

	count, ok := headers.Get(HeaderEventCount)
	req.True(ok)
	req.Equal("1", count)

	_, ok = headers.Get(HeaderBeginDate)
	req.False(ok)
	_, ok = headers.Get(HeaderEndDate)
	req.False(ok)
}

func TestBuildHeaders_DateRangeChecksEachEdge(t *testing.T) {
	req := require.New(t)

	// The undated event sorts first, so only the end date is present
	m := manifest.Manifest{
		Version: "1.0",
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-01-01T00:00:00Z", Body: "dated"},
			manifest.Event{Body: "undated"},
		),
	}

	headers := headersFor(m, Identity{})

	_, ok := headers.Get(HeaderBeginDate)
	req.False(ok)

	end, ok := headers.Get(HeaderEndDate)
	req.True(ok)
	req.Equal("2023-01-01T00:00:00Z", end)
}

func TestBuildHeaders_Custodian(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{Version: "1.0"}

	headers := headersFor(m, Identity{Display: "Custodela Vouch", Email: "custodian@corp.com"})
	from, ok := headers.Get(HeaderFrom)
	req.True(ok)
	req.Equal("\"Custodela Vouch\" <custodian@corp.com>", from)

	// A display name alone does not toggle From
	headers = headersFor(m, Identity{Display: "No Address"})
	_, ok = headers.Get(HeaderFrom)
	req.False(ok)
}

func TestBuildHeaders_WireOrder(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Participants: []manifest.Participant{
			{ID: "a", Display: "Alice", Email: "alice@corp.com"},
			{ID: "a", Display: "Alice", Email: "alice@corp.com"},
		},
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-01-01T00:00:00Z"},
			manifest.Event{Timestamp: "2023-01-02T00:00:00Z"},
		),
	}

	headers := BuildHeaders(m, transcript.NewTimeline(m), "gen", Identity{Display: "C", Email: "c@corp.com"})

	names := make([]string, 0, len(headers))
	for _, h := range headers {
		names = append(names, h.Name)
	}
	req.Equal([]string{
		HeaderVersion,
		HeaderGenerator,
		HeaderFrom,
		HeaderTo,
		HeaderTo,
		HeaderEventCount,
		HeaderBeginDate,
		HeaderEndDate,
	}, names)
}

func TestIdentity_String(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		expected string
	}{
		{"display and email", Identity{Display: "Alice", Email: "alice@corp.com"}, "\"Alice\" <alice@corp.com>"},
		{"email only", Identity{Email: "alice@corp.com"}, "<alice@corp.com>"},
		{"ascii display only", Identity{Display: "Alice"}, "Alice"},
		{"accented display only", Identity{Display: "Héloïse"}, "=?utf-8?q?H=C3=A9lo=C3=AFse?="},
		{"empty", Identity{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.identity.String())
		})
	}
}
