package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/repository"
)

const testAdminPassword = "correct-horse"

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryConfig returns a configuration that needs no external services.
func memoryConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      0,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Calculator: config.CalculatorConfig{DefaultBufferPercentage: 12},
		Cache: config.CacheConfig{
			Backend: config.CacheBackendMemory,
			Size:    100,
			TTL:     time.Minute,
		},
		Auth: config.AuthConfig{
			AdminUsername:  "admin",
			JWTSecretKey:   "app-test-secret",
			AccessTokenTTL: time.Hour,
		},
		Database: config.DatabaseConfig{
			Driver:                         config.DriverMemory,
			SeedOnStart:                    true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func memoryStore() *StoreComponents {
	store := newStoreComponents(config.DriverMemory)
	store.TruckClassRepo = repository.NewMemoryTruckClassRepository()
	return store
}

func adminPasswordHash(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func serve(handler http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
