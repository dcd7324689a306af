package paginator

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorQuery_Adjust(t *testing.T) {
	tests := []struct {
		name  string
		in    CursorQuery
		limit int
	}{
		{name: "zero uses default", in: CursorQuery{}, limit: DefaultLimit},
		{name: "negative uses default", in: CursorQuery{Limit: -4}, limit: DefaultLimit},
		{name: "over max is capped", in: CursorQuery{Limit: 1000}, limit: MaxLimit},
		{name: "valid kept", in: CursorQuery{Limit: 10}, limit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.limit, q.Limit)
			assert.Equal(t, tt.limit+1, q.FetchLimit())
		})
	}
}

func TestNewCursorPage(t *testing.T) {
	last := NewCursorPage(3, 10, "")
	assert.Nil(t, last.NextCursor)
	assert.False(t, last.HasNext)

	mid := NewCursorPage(10, 10, "abc")
	require.NotNil(t, mid.NextCursor)
	assert.Equal(t, "abc", *mid.NextCursor)
	assert.True(t, mid.HasNext)
}

func TestEncodeDecodeToken(t *testing.T) {
	token, err := EncodeToken(map[string]any{"id": 3})
	require.NoError(t, err)

	fields, ok := DecodeToken(token)
	require.True(t, ok)
	assert.JSONEq(t, "3", string(fields["id"]))
}

func TestDecodeToken_URLSafeAlphabet(t *testing.T) {
	raw := []byte(`{"ts":"2024-01-01T00:00:00Z","id":1}`)
	fields, ok := DecodeToken(base64.RawURLEncoding.EncodeToString(raw))
	require.True(t, ok)
	assert.Contains(t, fields, "ts")
}

func TestDecodeToken_Invalid(t *testing.T) {
	for _, token := range []string{
		"",
		"   ",
		"!!!not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
		base64.StdEncoding.EncodeToString([]byte(`null`)),
	} {
		_, ok := DecodeToken(token)
		assert.False(t, ok, "token %q", token)
	}
}
