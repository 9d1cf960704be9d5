package models

import (
	"encoding/json"
	"time"
)

// Duration is a time.Duration that reads and writes as a Go duration string
// ("90s", "168h") in JSON and YAML documents.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = tmp
	return nil
}

func (d *Duration) Ptr() *time.Duration {
	if d == nil || d.Duration == 0 {
		return nil
	}
	v := d.Duration
	return &v
}
