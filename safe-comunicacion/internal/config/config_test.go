package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8083", cfg.HTTP.Addr)
	assert.Equal(t, "safe_comunicacion", cfg.Database.Database)
	assert.False(t, cfg.MQTT.Enabled)
	assert.Equal(t, "safe-comunicacion", cfg.MQTT.ClientID)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
	assert.Equal(t, "safe-rescue:notificaciones", cfg.Notificaciones.Stream)
	assert.Equal(t, int64(10000), cfg.Notificaciones.StreamMaxLen)
}

func TestLoad_MQTTOverrides(t *testing.T) {
	t.Setenv("MQTT_ENABLED", "true")
	t.Setenv("MQTT_BROKER", "tcp://mosquitto:1883")
	t.Setenv("MQTT_QOS", "0")

	cfg := Load()
	assert.True(t, cfg.MQTT.Enabled)
	assert.Equal(t, "tcp://mosquitto:1883", cfg.MQTT.Broker)
	assert.Equal(t, byte(0), cfg.MQTT.QoS)
}
