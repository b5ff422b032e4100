package app

import (
	"testing"
	"time"

	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	infos map[string]any
}

func (c *captureLogger) InfoObj(msg, _ string, obj interface{}) {
	if c.infos == nil {
		c.infos = map[string]any{}
	}
	c.infos[msg] = obj
}
func (c *captureLogger) DebugObj(string, string, interface{}) {}
func (c *captureLogger) WarnObj(string, string, interface{})  {}
func (c *captureLogger) ErrorObj(string, string, interface{}) {}

func TestNewClientFromConfig(t *testing.T) {
	log := &captureLogger{}
	client, err := NewClient(&config.Config{
		ClientID:     "c",
		AuthToken:    "t",
		MaxVideoSize: 99,
		HTTPTimeout:  3 * time.Second,
	}, log)
	require.NoError(t, err)
	assert.EqualValues(t, 99, client.Settings().MaxVideoSize)

	meta, ok := log.infos["vzaar client initialized"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, meta["timeout_seconds"])
}

func TestNewClientErrors(t *testing.T) {
	_, err := NewClient(nil, nil)
	assert.Error(t, err)

	_, err = NewClient(&config.Config{}, nil)
	assert.Error(t, err)
}
