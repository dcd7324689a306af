package query

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 123000000, time.UTC)
	value := int64(5000)

	tcs := map[string]struct {
		ordering Ordering
		cursor   Cursor
	}{
		"plain": {
			ordering: Ordering{Direction: Desc},
			cursor:   PlainCursor{TS: &ts, ID: 3},
		},
		"plain with null timestamp": {
			ordering: Ordering{ByClosedAt: true, Direction: Desc},
			cursor:   PlainCursor{ID: 3},
		},
		"valued": {
			ordering: Ordering{ValuePrefix: true, Direction: Desc},
			cursor:   ValuedCursor{Value: &value, TS: &ts, ID: 7},
		},
		"valued with null value": {
			ordering: Ordering{ValuePrefix: true, Direction: Desc},
			cursor:   ValuedCursor{TS: &ts, ID: 7},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			token, err := EncodeCursor(tc.cursor)
			require.NoError(t, err)

			got, ok := DecodeCursor(token, tc.ordering)
			require.True(t, ok)
			assert.Equal(t, tc.cursor, got)
		})
	}
}

func TestEncodeCursor_Format(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.FixedZone("x", 3600))

	token, err := EncodeCursor(PlainCursor{TS: &ts, ID: 3})
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ts":"2024-06-01T11:30:00Z","id":3}`, string(raw))

	value := int64(42)
	token, err = EncodeCursor(ValuedCursor{Value: &value, ID: 1})
	require.NoError(t, err)
	raw, err = base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t, `{"value":42,"ts":null,"id":1}`, string(raw))
}

func encodeRaw(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecodeCursor_Lenient(t *testing.T) {
	plain := Ordering{Direction: Desc}
	closed := Ordering{ByClosedAt: true, Direction: Desc}
	valued := Ordering{ValuePrefix: true, Direction: Desc}

	tcs := map[string]struct {
		token    string
		ordering Ordering
		wantOK   bool
	}{
		"empty":              {token: "", ordering: plain, wantOK: true},
		"blank":              {token: "   ", ordering: plain, wantOK: true},
		"not base64":         {token: "%%%not-base64%%%", ordering: plain},
		"truncated":          {token: encodeRaw(`{"ts":"2024-06-01T00:00:00Z","id":3}`)[:10], ordering: plain},
		"not json":           {token: encodeRaw("hello"), ordering: plain},
		"json array":         {token: encodeRaw(`[1,2]`), ordering: plain},
		"missing id":         {token: encodeRaw(`{"ts":"2024-06-01T00:00:00Z"}`), ordering: plain},
		"missing ts":         {token: encodeRaw(`{"id":3}`), ordering: plain},
		"bad ts":             {token: encodeRaw(`{"ts":"yesterday","id":3}`), ordering: plain},
		"fractional id":      {token: encodeRaw(`{"ts":"2024-06-01T00:00:00Z","id":3.5}`), ordering: plain},
		"null ts on recency": {token: encodeRaw(`{"ts":null,"id":3}`), ordering: plain},
		"valued for plain":   {token: encodeRaw(`{"value":1,"ts":"2024-06-01T00:00:00Z","id":3}`), ordering: plain},
		"plain for valued":   {token: encodeRaw(`{"ts":"2024-06-01T00:00:00Z","id":3}`), ordering: valued},
		"bad value":          {token: encodeRaw(`{"value":"lots","ts":"2024-06-01T00:00:00Z","id":3}`), ordering: valued},
		"valued for closed":  {token: encodeRaw(`{"value":null,"ts":null,"id":3}`), ordering: closed},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, ok := DecodeCursor(tc.token, tc.ordering)
			assert.Nil(t, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestDecodeCursor_AcceptsStringNumbers(t *testing.T) {
	token := encodeRaw(`{"value":"5000","ts":"2024-06-01T00:00:00.000Z","id":"12"}`)
	got, ok := DecodeCursor(token, Ordering{ValuePrefix: true})
	require.True(t, ok)

	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c, isValued := got.(ValuedCursor)
	require.True(t, isValued)
	require.NotNil(t, c.Value)
	assert.Equal(t, int64(5000), *c.Value)
	assert.True(t, want.Equal(*c.TS))
	assert.Equal(t, int64(12), c.ID)
}

func TestDecodeCursor_URLSafeAlphabet(t *testing.T) {
	token := base64.RawURLEncoding.EncodeToString([]byte(`{"ts":"2024-06-01T00:00:00Z","id":3}`))
	got, ok := DecodeCursor(token, Ordering{})
	require.True(t, ok)
	assert.Equal(t, int64(3), got.Key().ID)
}

func TestCursorFor(t *testing.T) {
	ts := time.Now()
	v := int64(1)
	k := SortKey{Value: &v, TS: &ts, ID: 2}

	assert.Equal(t, PlainCursor{TS: &ts, ID: 2}, CursorFor(Ordering{}, k))
	assert.Equal(t, ValuedCursor{Value: &v, TS: &ts, ID: 2}, CursorFor(Ordering{ValuePrefix: true}, k))
}
