package paginator

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Adjust normalizes the pagination parameters to valid values.
func (q *CursorQuery) Adjust() {
	q.Cursor = strings.TrimSpace(q.Cursor)
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	} else if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// FetchLimit is the number of rows to read so a following page can be detected.
func (q CursorQuery) FetchLimit() int {
	return q.Limit + 1
}

// NewCursorPage builds page metadata from the trimmed page size and the next token.
func NewCursorPage(count, perPage int, nextCursor string) CursorPage {
	p := CursorPage{
		Count:   count,
		PerPage: perPage,
	}
	if nextCursor != "" {
		p.NextCursor = &nextCursor
		p.HasNext = true
	}
	return p
}

// EncodeToken serializes v as base64 of its JSON form.
func EncodeToken(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeToken reverses EncodeToken into a map of raw JSON fields.
// It reports false for anything that is not base64 of a JSON object.
func DecodeToken(token string) (map[string]json.RawMessage, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	data, err := decodeBase64(token)
	if err != nil {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not,
// since tokens round-trip through query strings.
func decodeBase64(token string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(token)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
