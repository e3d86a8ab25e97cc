package transcript

import (
	"testing"

	"rsmf-lab/domain/manifest"

	"github.com/stretchr/testify/require"
)

func eventsOf(events ...manifest.Event) *[]manifest.Event {
	return &events
}

func TestNewTimeline_SortsByRawTimestamp(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-01-02T00:00:00Z", Body: "hi"},
			manifest.Event{Timestamp: "2023-01-01T00:00:00Z", Body: "hello"},
		),
	}

	tl := NewTimeline(m)
	req.Equal(2, tl.Count())

	first, ok := tl.First()
	req.True(ok)
	req.Equal("hello", first.Body)

	last, ok := tl.Last()
	req.True(ok)
	req.Equal("hi", last.Body)

	req.Equal("hello\n\n\nhi\n\n\n", tl.Body())
}

func TestNewTimeline_MissingTimestampSortsFirst(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-06-01T10:00:00Z", Body: "dated"},
			manifest.Event{Body: "undated"},
		),
	}

	first, ok := NewTimeline(m).First()
	req.True(ok)
	req.Equal("undated", first.Body)
}

func TestNewTimeline_StableOnEqualTimestamps(t *testing.T) {
	req := require.New(t)

	m := manifest.Manifest{
		Version: "1.0",
		Events: eventsOf(
			manifest.Event{Timestamp: "2023-06-01T10:00:00Z", Body: "one"},
			manifest.Event{Timestamp: "2023-06-01T10:00:00Z", Body: "two"},
			manifest.Event{Timestamp: "2023-06-01T10:00:00Z", Body: "three"},
		),
	}

	events := NewTimeline(m).Events()
	req.Equal("one", events[0].Body)
	req.Equal("two", events[1].Body)
	req.Equal("three", events[2].Body)
}

func TestTimeline_Body(t *testing.T) {
	participants := []manifest.Participant{
		{ID: "p1", Display: "Alice", Email: "alice@corp.com"},
		{ID: "p2", Display: "Bob"},
	}

	tests := []struct {
		name     string
		manifest manifest.Manifest
		expected string
	}{
		{
			name: "display, body and reaction",
			manifest: manifest.Manifest{
				Participants: participants,
				Events: eventsOf(manifest.Event{
					Participant: "p1",
					Timestamp:   "2023-01-01T00:00:00Z",
					Body:        "hi",
					Reactions:   []manifest.Reaction{{Value: "👍"}},
				}),
			},
			expected: "Alice\n\nhi\n\n👍\n\n\n",
		},
		{
			name: "unresolvable participant renders no display line",
			manifest: manifest.Manifest{
				Participants: participants,
				Events: eventsOf(manifest.Event{
					Participant: "ghost",
					Body:        "who said this",
				}),
			},
			expected: "who said this\n\n\n",
		},
		{
			name: "empty body still renders the separator lines",
			manifest: manifest.Manifest{
				Participants: participants,
				Events:       eventsOf(manifest.Event{Participant: "p2"}),
			},
			expected: "Bob\n\n\n\n",
		},
		{
			name: "empty reaction values are skipped",
			manifest: manifest.Manifest{
				Participants: participants,
				Events: eventsOf(manifest.Event{
					Body:      "ok",
					Reactions: []manifest.Reaction{{Value: ""}, {Value: "❤️"}},
				}),
			},
			expected: "ok\n\n❤️\n\n\n",
		},
		{
			name:     "no events list renders the empty string",
			manifest: manifest.Manifest{Participants: participants},
			expected: "",
		},
		{
			name: "empty events list renders the empty string",
			manifest: manifest.Manifest{
				Participants: participants,
				Events:       eventsOf(),
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, NewTimeline(tt.manifest).Body())
		})
	}
}

func TestTimeline_HasEvents(t *testing.T) {
	req := require.New(t)

	req.False(NewTimeline(manifest.Manifest{}).HasEvents())
	req.True(NewTimeline(manifest.Manifest{Events: eventsOf()}).HasEvents())

	tl := NewTimeline(manifest.Manifest{Events: eventsOf()})
	req.Equal(0, tl.Count())

	_, ok := tl.First()
	req.False(ok)
	_, ok = tl.Last()
	req.False(ok)
}
