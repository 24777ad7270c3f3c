package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_Precedence(t *testing.T) {
	Env = map[string]string{"APP_PORT": "9090"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, "9090", GetEnv("APP_PORT", "8080"))

	t.Setenv("DB_HOST", "db.internal")
	assert.Equal(t, "db.internal", GetEnv("DB_HOST", "127.0.0.1"))

	assert.Equal(t, "8080", GetEnv("MISSING_KEY", "8080"))
}
