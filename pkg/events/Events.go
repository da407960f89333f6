package events

import (
	"encoding/json"
	"fmt"
)

func New(name string, sequence uint64, payload interface{}) (Event, error) {
	event := Event{
		Name:     name,
		Sequence: sequence,
	}

	if payload == nil {
		return event, nil
	}

	data, err := json.Marshal(payload)

	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal payload of %s: %w", name, err)
	}

	event.Data = data

	return event, nil
}

func FromJson(bytes []byte) (Event, error) {
	var event Event

	if err := json.Unmarshal(bytes, &event); err != nil {
		return Event{}, err
	}

	if event.Name == "" {
		return Event{}, fmt.Errorf("event has no name")
	}

	return event, nil
}

func (event Event) ToJson() ([]byte, error) {
	return json.Marshal(event)
}

func (event Event) IsEmpty() bool {
	return len(event.Data) == 0 || string(event.Data) == "null"
}

// Decode unmarshals the event data into into.
func (event Event) Decode(into interface{}) error {
	if event.IsEmpty() {
		return fmt.Errorf("event %s carries no data", event.Name)
	}

	return json.Unmarshal(event.Data, into)
}

// Mode returns the data as a string, used by START_LOADING_ICON.
func (event Event) Mode() string {
	var mode string

	if err := json.Unmarshal(event.Data, &mode); err != nil {
		return ""
	}

	return mode
}

func (s *Subscription) GetName() string {
	return s.name
}

// Unsubscribe detaches the listener; it is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		s.off(s)
	})
}
