package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayoutTally = "20060102"
	DateLayoutISO   = "2006-01-02"
)

// additional layouts seen in upstream text output
var tallyDateLayouts = []string{
	DateLayoutTally,
	"2-Jan-2006",
	"2-Jan-06",
	"02/01/2006",
	"02-01-2006",
	DateLayoutISO,
}

// Date is a calendar date rendered as YYYY-MM-DD; the zero value renders as an empty string.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTallyDate accepts an 8-digit YYYYMMDD date and requires it to be a real calendar day.
func ParseTallyDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return Date{}, fmt.Errorf("%w: date %q is not in YYYYMMDD form", ErrInvalidParameter, s)
	}
	t, err := time.Parse(DateLayoutTally, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: %v", ErrInvalidParameter, s, err)
	}
	return Date{t}, nil
}

// ParseUpstreamDate tries every layout the upstream is known to emit.
func ParseUpstreamDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range tallyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

func (d Date) Tally() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayoutTally)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateLayoutISO, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}
