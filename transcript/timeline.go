// Package transcript builds ordered timelines from manifest events.
// Handles event ordering, participant resolution, and body rendering.
// Does not touch the archive or the container layers.
package transcript

import (
	"slices"
	"strings"

	"rsmf-lab/domain/manifest"
)

// Timeline holds the manifest events in rendering order.
type Timeline struct {
	manifest manifest.Manifest
	events   []manifest.Event
}

// NewTimeline sorts events ascending by raw timestamp text. The sort is
// ordinal and stable: equal timestamps keep their manifest order, and a
// missing timestamp sorts like the empty string (first). Chronological
// correctness depends on the timestamps sharing one sortable format.
func NewTimeline(m manifest.Manifest) *Timeline {
	events := slices.Clone(m.EventList())
	slices.SortStableFunc(events, func(a, b manifest.Event) int {
		return strings.Compare(a.Timestamp, b.Timestamp)
	})
	return &Timeline{
		manifest: m,
		events:   events,
	}
}

// HasEvents reports whether the manifest carried an events list at all,
// as opposed to an empty one.
func (t *Timeline) HasEvents() bool {
	return t.manifest.HasEvents()
}

func (t *Timeline) Count() int {
	return len(t.events)
}

// Events returns the sorted events. Callers must not mutate the slice.
func (t *Timeline) Events() []manifest.Event {
	return t.events
}

func (t *Timeline) First() (manifest.Event, bool) {
	if len(t.events) == 0 {
		return manifest.Event{}, false
	}
	return t.events[0], true
}

func (t *Timeline) Last() (manifest.Event, bool) {
	if len(t.events) == 0 {
		return manifest.Event{}, false
	}
	return t.events[len(t.events)-1], true
}

// Body renders every event into one text buffer. Per event: the resolved
// participant display name on its own line plus a blank line, the body
// text on its own line when present, a blank line, each non-empty
// reaction value on its own line plus a blank line, and a trailing blank
// line. Text passes through verbatim, no escaping.
func (t *Timeline) Body() string {
	var sb strings.Builder
	for _, evt := range t.events {
		if evt.Participant != "" {
			if p, ok := t.manifest.ParticipantByID(evt.Participant); ok {
				sb.WriteString(p.Display)
				sb.WriteString("\n\n")
			}
		}
		if evt.Body != "" {
			sb.WriteString(evt.Body)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		for _, reaction := range evt.Reactions {
			if reaction.Value == "" {
				continue
			}
			sb.WriteString(reaction.Value)
			sb.WriteString("\n\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
