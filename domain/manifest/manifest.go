// Package manifest contains the transcript manifest model.
// This file defines the document shape and its parsing rules.
// No archive, container, or UI logic should be added here.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	errs "rsmf-lab/errors"

	"github.com/go-playground/validator/v10"
)

// Filename is the fixed name the manifest must carry inside an input directory.
const Filename = "rsmf_manifest.json"

var validate = validator.New()

// Manifest describes one transcript: participants, events, conversations.
// Events is a pointer so an absent list and an empty list stay distinguishable;
// header derivation depends on that difference.
type Manifest struct {
	Version       string         `json:"version" validate:"required"`
	Participants  []Participant  `json:"participants"`
	Events        *[]Event       `json:"events"`
	Conversations []Conversation `json:"conversations"`
}

// Participant is an actor in the transcript. ID is the join key used by
// events; no uniqueness is enforced, duplicates pass through unchanged.
type Participant struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Email   string `json:"email"`
}

// Event is one transcript entry. All fields are optional; Timestamp is kept
// as raw text because ordering is lexical, not parsed.
type Event struct {
	Participant  string     `json:"participant"`
	Timestamp    string     `json:"timestamp"`
	Body         string     `json:"body"`
	Reactions    []Reaction `json:"reactions"`
	Conversation string     `json:"conversation"`
}

type Reaction struct {
	Value string `json:"value"`
}

type Conversation struct {
	ID      string `json:"id"`
	Display string `json:"display"`
}

// Parse decodes a manifest document. Unknown fields are ignored; a missing or
// empty version is a checked failure, not an incidental one.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", errs.ErrManifestParse, err)
	}
	if err := validate.Struct(m); err != nil {
		return Manifest{}, fmt.Errorf("%w: version is required", errs.ErrManifestParse)
	}
	return m, nil
}

func ParseFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", errs.ErrManifestParse, err)
	}
	return Parse(data)
}

// HasEvents reports whether the manifest carried an events list at all,
// even an empty one.
func (m Manifest) HasEvents() bool {
	return m.Events != nil
}

func (m Manifest) EventList() []Event {
	if m.Events == nil {
		return nil
	}
	return *m.Events
}

// ParticipantByID resolves an event's participant reference against the
// participants list. First match wins when IDs are duplicated.
func (m Manifest) ParticipantByID(id string) (Participant, bool) {
	for _, p := range m.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}
