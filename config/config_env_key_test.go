package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{"serviceName": "container-view"},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"secretKey": map[string]any{"session": "", "stepUp": ""},
		"auth": map[string]any{
			"sessionTokenTTL": "2h",
			"attemptLimit":    map[string]any{"perMinute": 10},
		},
		"bootstrap": map[string]any{
			"admin": map[string]any{"taxId": ""},
		},
	}

	cases := map[string]string{
		"ENV_SERVICENAME":             "env.serviceName",
		"POSTGRES_MASTER_USERNAME":    "postgres.master.userName",
		"SECRETKEY_STEPUP":            "secretKey.stepUp",
		"AUTH_SESSIONTOKENTTL":        "auth.sessionTokenTTL",
		"AUTH_ATTEMPTLIMIT_PERMINUTE": "auth.attemptLimit.perMinute",
		"BOOTSTRAP_ADMIN_TAXID":       "bootstrap.admin.taxId",
		// Unknown keys fall back to lower case segments.
		"MAIL_SMTP_HOST": "mail.smtp.host",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
