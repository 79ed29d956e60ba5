// Package testing prepares the process environment for package tests.
// Import it for side effects: _ "github.com/publish-data/publish-data/testing".
package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

func ensureTestEnv() {
	once.Do(func() {
		_ = os.Setenv("APP_ENV", "test")
		if os.Getenv("LOG_LEVEL") == "" {
			_ = os.Setenv("LOG_LEVEL", "error")
		}
	})
}

func init() {
	ensureTestEnv()
}

func TestMain(m *stdtesting.M) {
	ensureTestEnv()
	os.Exit(m.Run())
}
