package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(newViper(nil))

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 1000, cfg.Search.KeywordMatchLimit)
	assert.Equal(t, 5*time.Minute, cfg.Search.SettingsCacheTTL)
	assert.Equal(t, []string{"inbox-srv"}, cfg.JWT.Audience)
	assert.Equal(t, "public", cfg.Postgres.Schema)
	assert.Equal(t, "inbox_auth_token", cfg.Cookie.Name)
}

func TestValidate(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"

	tcs := map[string]struct {
		overrides map[string]any
		wantErr   string
	}{
		"valid": {
			overrides: map[string]any{"jwt.secret_key": secret},
		},
		"missing secret": {
			wantErr: "jwt.secret_key is required",
		},
		"short secret": {
			overrides: map[string]any{"jwt.secret_key": "short"},
			wantErr:   "jwt.secret_key must be at least 32 characters",
		},
		"zero keyword limit": {
			overrides: map[string]any{"jwt.secret_key": secret, "search.keyword_match_limit": 0},
			wantErr:   "search.keyword_match_limit",
		},
		"zero cache ttl": {
			overrides: map[string]any{"jwt.secret_key": secret, "search.settings_cache_ttl": "0s"},
			wantErr:   "search.settings_cache_ttl",
		},
		"missing redis host": {
			overrides: map[string]any{"jwt.secret_key": secret, "redis.host": ""},
			wantErr:   "redis.host is required",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := validate(fromViper(newViper(tc.overrides)))
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
