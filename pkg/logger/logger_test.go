package logger

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Cleanup(viper.Reset)

	log, err := New()
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.Equal(t, DEFAULT_SERVICE_NAME, viper.GetString("SERVICE_NAME"))

	viper.Set("LOG_LEVEL", 7)
	_, err = New()
	assert.Error(t, err)
}
