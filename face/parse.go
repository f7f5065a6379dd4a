package face

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

type rawFrame struct {
	Mouth    json.RawMessage `json:"mouth"`
	Eye      json.RawMessage `json:"eye"`
	Lid      json.RawMessage `json:"lid"`
	Duration json.RawMessage `json:"duration"`
}

// ParseSequence decodes and validates a prediction document: a JSON array of
// frame objects. Fields other than mouth, eye, lid and duration are ignored.
func ParseSequence(data []byte) (Sequence, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &ValidationError{Index: -1, Reason: "top-level value must be an array of frames: " + err.Error()}
	}
	if items == nil {
		return nil, &ValidationError{Index: -1, Reason: "top-level value must be an array of frames"}
	}

	seq := make(Sequence, 0, len(items))
	for i, item := range items {
		f, err := parseFrame(i, item)
		if err != nil {
			return nil, err
		}
		seq = append(seq, f)
	}
	return seq, nil
}

func parseFrame(i int, item json.RawMessage) (Frame, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
		return Frame{}, &ValidationError{Index: i, Reason: "not an object"}
	}
	var raw rawFrame
	if err := json.Unmarshal(item, &raw); err != nil {
		return Frame{}, &ValidationError{Index: i, Reason: err.Error()}
	}

	var f Frame
	var err error
	if f.Mouth, err = level(i, "mouth", raw.Mouth, 5); err != nil {
		return f, err
	}
	if f.Eye, err = level(i, "eye", raw.Eye, 21); err != nil {
		return f, err
	}
	if f.Lid, err = level(i, "lid", raw.Lid, 4); err != nil {
		return f, err
	}

	d, present, err := number(raw.Duration)
	if err != nil {
		return f, &ValidationError{Index: i, Field: "duration", Reason: "must be a number"}
	}
	if present {
		if d < 0 || math.IsInf(d, 0) {
			return f, &ValidationError{Index: i, Field: "duration", Reason: fmt.Sprintf("must be non-negative, got %v", d)}
		}
		f.Duration = d
	}
	return f, nil
}

// level reads a required integer field in [1,max].
func level(i int, field string, raw json.RawMessage, max int) (int, error) {
	v, present, err := number(raw)
	if err != nil {
		return 0, &ValidationError{Index: i, Field: field, Reason: "must be a number"}
	}
	if !present {
		return 0, &ValidationError{Index: i, Field: field, Reason: "is missing"}
	}
	if v != math.Trunc(v) {
		return 0, &ValidationError{Index: i, Field: field, Reason: fmt.Sprintf("must be an integer, got %v", v)}
	}
	if v < 1 || v > float64(max) {
		return 0, &ValidationError{Index: i, Field: field, Reason: fmt.Sprintf("must be in [1,%d], got %v", max, v)}
	}
	return int(v), nil
}

func number(raw json.RawMessage) (float64, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, true, err
	}
	return v, true, nil
}
