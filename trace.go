package localizer

import (
	"encoding/json"
)

// Trace captures provenance information for a single resolution call across
// the loaders that were consulted before a hit or exhaustion.
type Trace struct {
	Key      string    `json:"key"`
	Locale   string    `json:"locale,omitempty"`
	Style    string    `json:"style,omitempty"`
	Attempts []Attempt `json:"attempts"`
}

// Attempt details how a specific loader responded to a traced lookup.
type Attempt struct {
	Loader string `json:"loader"`
	Found  bool   `json:"found"`
	Value  string `json:"value,omitempty"`
}

// Hit reports whether any consulted loader produced the string.
func (t Trace) Hit() bool {
	for _, attempt := range t.Attempts {
		if attempt.Found {
			return true
		}
	}
	return false
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
