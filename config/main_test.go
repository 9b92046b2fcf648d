package config

import (
	"os"
	"testing"
)

// TestMain runs before all tests in the config package.
// It forces GO_ENV=test so Load never picks up a developer's .env file.
func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	os.Exit(m.Run())
}
