package query

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"inbox-srv/pkg/paginator"
)

// Cursor is the last-seen sort key of a page. It is either a PlainCursor or a
// ValuedCursor, matching whether the ordering has a value prefix.
type Cursor interface {
	Key() SortKey
	isCursor()
}

// PlainCursor resumes a (timestamp, id) ordering.
type PlainCursor struct {
	TS *time.Time
	ID int64
}

// ValuedCursor resumes a (value, timestamp, id) ordering.
type ValuedCursor struct {
	Value *int64
	TS    *time.Time
	ID    int64
}

func (c PlainCursor) Key() SortKey  { return SortKey{TS: c.TS, ID: c.ID} }
func (c ValuedCursor) Key() SortKey { return SortKey{Value: c.Value, TS: c.TS, ID: c.ID} }
func (PlainCursor) isCursor()       {}
func (ValuedCursor) isCursor()      {}

// CursorFor builds the cursor of a row positioned at k under o.
func CursorFor(o Ordering, k SortKey) Cursor {
	if o.ValuePrefix {
		return ValuedCursor{Value: k.Value, TS: k.TS, ID: k.ID}
	}
	return PlainCursor{TS: k.TS, ID: k.ID}
}

type plainPayload struct {
	TS *string `json:"ts"`
	ID int64   `json:"id"`
}

type valuedPayload struct {
	Value *int64  `json:"value"`
	TS    *string `json:"ts"`
	ID    int64   `json:"id"`
}

// EncodeCursor serializes c as an opaque token.
func EncodeCursor(c Cursor) (string, error) {
	switch c := c.(type) {
	case PlainCursor:
		return paginator.EncodeToken(plainPayload{TS: formatTS(c.TS), ID: c.ID})
	case ValuedCursor:
		return paginator.EncodeToken(valuedPayload{Value: c.Value, TS: formatTS(c.TS), ID: c.ID})
	default:
		return "", nil
	}
}

// DecodeCursor parses token for ordering o. It returns nil when the token is
// empty, malformed or shaped for a different ordering; ok is false only when a
// non-empty token was discarded.
func DecodeCursor(token string, o Ordering) (c Cursor, ok bool) {
	fields, valid := paginator.DecodeToken(token)
	if !valid {
		return nil, strings.TrimSpace(token) == ""
	}

	id, ok := decodeInt(fields["id"])
	if !ok {
		return nil, false
	}
	rawTS, hasTS := fields["ts"]
	if !hasTS {
		return nil, false
	}
	ts, ok := decodeTS(rawTS)
	if !ok {
		return nil, false
	}
	if ts == nil && !o.SortNullable() {
		return nil, false
	}

	rawValue, hasValue := fields["value"]
	if hasValue != o.ValuePrefix {
		return nil, false
	}
	if !o.ValuePrefix {
		return PlainCursor{TS: ts, ID: id}, true
	}

	var value *int64
	if !isNull(rawValue) {
		v, ok := decodeInt(rawValue)
		if !ok {
			return nil, false
		}
		value = &v
	}
	return ValuedCursor{Value: value, TS: ts, ID: id}, true
}

func formatTS(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.UTC().Format(time.RFC3339Nano)
	return &s
}

func decodeTS(raw json.RawMessage) (*time.Time, bool) {
	if isNull(raw) {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, false
	}
	return &ts, true
}

// decodeInt accepts a JSON integer or a decimal string holding one.
func decodeInt(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 || isNull(raw) {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Int64()
		return v, err == nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
