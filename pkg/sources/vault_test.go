package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/vault/api"
)

// newTestVaultClient points a Vault API client at a stub HTTP server.
func newTestVaultClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	config := api.DefaultConfig()
	config.Address = ts.URL

	client, err := api.NewClient(config)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	client.SetToken("test-token")
	return client
}

func TestVaultConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     VaultConfig
		wantErr bool
	}{
		{"missing address", VaultConfig{Token: "t", Path: "secret/data/app"}, true},
		{"missing token", VaultConfig{Address: "http://localhost:8200", Path: "secret/data/app"}, true},
		{"missing path", VaultConfig{Address: "http://localhost:8200", Token: "t"}, true},
		{"valid", VaultConfig{Address: "http://localhost:8200", Token: "t", Path: "secret/data/app"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewVaultClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		if _, err := NewVaultClient(nil); err == nil {
			t.Error("Expected error for nil config, got nil")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := &VaultConfig{Token: "t", Path: "secret/data/app"}
		if _, err := NewVaultClient(cfg); err == nil {
			t.Error("Expected error for invalid config, got nil")
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		cfg := &VaultConfig{Address: "://invalid-url", Token: "t", Path: "secret/data/app"}
		if _, err := NewVaultClient(cfg); err == nil {
			t.Error("Expected error for invalid address, got nil")
		}
	})

	t.Run("valid config with namespace", func(t *testing.T) {
		cfg := &VaultConfig{
			Address:   "http://localhost:8200",
			Token:     "t",
			Path:      "secret/data/app",
			Namespace: "myns",
		}
		client, err := NewVaultClient(cfg)
		if err != nil {
			t.Fatalf("NewVaultClient() error = %v", err)
		}
		if client == nil {
			t.Fatal("Expected client, got nil")
		}
	})
}

func TestVault_LookupKVv2(t *testing.T) {
	var requestedPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"db_password":"hunter2"},"metadata":{"version":1}}}`))
	})

	client := newTestVaultClient(t, handler)
	src := Vault(client, "secret/data/app")

	v, ok := src.Lookup("db_password")
	if !ok || v != "hunter2" {
		t.Errorf("Expected 'hunter2', got '%s' (found=%v)", v, ok)
	}
	if requestedPath != "/v1/secret/data/app" {
		t.Errorf("Expected read of '/v1/secret/data/app', got '%s'", requestedPath)
	}
}

func TestVault_LookupKVv1(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"db_password":"hunter2"}}`))
	})

	client := newTestVaultClient(t, handler)
	src := Vault(client, "secret/app")

	v, ok := src.Lookup("db_password")
	if !ok || v != "hunter2" {
		t.Errorf("Expected 'hunter2', got '%s' (found=%v)", v, ok)
	}
}

func TestVault_LookupMissingKey(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"other":"x"}}`))
	})

	client := newTestVaultClient(t, handler)
	if _, ok := Vault(client, "secret/app").Lookup("db_password"); ok {
		t.Error("Expected miss for key not in secret")
	}
}

func TestVault_LookupNonStringValue(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"port":8080}}`))
	})

	client := newTestVaultClient(t, handler)
	if _, ok := Vault(client, "secret/app").Lookup("port"); ok {
		t.Error("Expected miss for non-string secret value")
	}
}

func TestVault_LookupNonexistentPath(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[]}`))
	})

	client := newTestVaultClient(t, handler)
	if _, ok := Vault(client, "secret/data/nonexistent").Lookup("any"); ok {
		t.Error("Expected miss for nonexistent path")
	}
}

func TestVault_LookupServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors":["internal error"]}`))
	})

	client := newTestVaultClient(t, handler)
	if _, ok := Vault(client, "secret/app").Lookup("any"); ok {
		t.Error("Expected miss when Vault fails")
	}
}

func TestVault_Name(t *testing.T) {
	client := newTestVaultClient(t, http.NotFoundHandler())
	if name := Vault(client, "secret/app").Name(); name != "Vault" {
		t.Errorf("Expected name 'Vault', got '%s'", name)
	}
}
