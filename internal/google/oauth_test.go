package google

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTokenFileForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account keeps legacy name", "default", "google.token"},
		{"empty account maps to default", "", "google.token"},
		{"work account", "work", "google.work.token"},
		{"personal account", "personal", "google.personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFileForAccount(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("tokenFileForAccount(%q) = %v, want base %v", tt.account, got, tt.want)
			}
			if filepath.Base(filepath.Dir(got)) != "labelguard" {
				t.Errorf("token file %v should live in the labelguard cache dir", got)
			}
		})
	}
}

func TestGetAuthURLForAccount(t *testing.T) {
	url := GetAuthURLForAccount("work")
	if url == "" {
		t.Fatal("GetAuthURLForAccount() returned empty URL")
	}
	if !strings.Contains(url, "state-work") {
		t.Errorf("auth URL %q should carry the per-account state", url)
	}
}

func TestGetAuthenticationErrorMessage(t *testing.T) {
	msg := GetAuthenticationErrorMessage("default")
	if msg == "" {
		t.Error("GetAuthenticationErrorMessage() should return non-empty message")
	}
}

func TestDefaultAccountFunctions(t *testing.T) {
	// The legacy single-account helpers must agree with the per-account
	// variants for "default".
	if HasToken() != HasTokenForAccount("default") {
		t.Error("HasToken() should return same result as HasTokenForAccount('default')")
	}
	if GetAuthURL() != GetAuthURLForAccount("default") {
		t.Error("GetAuthURL() should match GetAuthURLForAccount('default')")
	}
}
