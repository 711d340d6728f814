package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{name: "info rfc3339", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}},
		{name: "debug kitchen", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}},
		{name: "level too low", cfg: Configuration{Level: -5, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "level too high", cfg: Configuration{Level: 9, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "empty format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: true},
		{name: "format without reference fields", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: "abc"}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
