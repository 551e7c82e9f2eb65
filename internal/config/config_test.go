package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var configKeys = []string{
	"LISTEN_ADDR", "UI_PASSWORD", "DATA_DIR", "MOVE_SPACE",
	"ALLOW_SHORT_SEND", "SYNC_MESSAGES", "TEXT_BUFFER", "DEBUG",
}

// isolate points DATA_DIR at a temp dir and clears every config key for the test.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	return dir
}

// TestLoad_Defaults verifies defaults when only the password is set.
func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("UI_PASSWORD", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.MoveSpace != "virtual" || cfg.TextBuffer != 256 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AllowShortSend || cfg.SyncMessages || cfg.Debug {
		t.Fatalf("expected boolean defaults off: %+v", cfg)
	}
}

// TestLoad_RequiresPassword verifies UI_PASSWORD is mandatory.
func TestLoad_RequiresPassword(t *testing.T) {
	isolate(t)
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "UI_PASSWORD") {
		t.Fatalf("expected UI_PASSWORD error, got %v", err)
	}
}

// TestLoad_Precedence verifies env beats .env, which beats the YAML file.
func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	yamlBody := "listen_addr: 0.0.0.0:9000\nui_password: fromyaml\nmove_space: primary\ntext_buffer: 64\nallow_short_send: true\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	envBody := "# comment\nexport TEXT_BUFFER=128\nSYNC_MESSAGES=\"yes\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(envBody), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7000" {
		t.Fatalf("expected env listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.TextBuffer != 128 || !cfg.SyncMessages {
		t.Fatalf("expected .env values, got %+v", cfg)
	}
	if cfg.UIPassword != "fromyaml" || cfg.MoveSpace != "primary" || !cfg.AllowShortSend {
		t.Fatalf("expected yaml values, got %+v", cfg)
	}
}

// TestLoad_InvalidValues verifies descriptive errors for bad values.
func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"move space":  {"MOVE_SPACE", "sideways"},
		"text buffer": {"TEXT_BUFFER", "0"},
		"not int":     {"TEXT_BUFFER", "many"},
		"not bool":    {"ALLOW_SHORT_SEND", "maybe"},
		"debug":       {"DEBUG", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv("UI_PASSWORD", "secret")
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil || !strings.Contains(err.Error(), kv[0]) {
				t.Fatalf("expected %s error, got %v", kv[0], err)
			}
		})
	}
}

// TestLoad_BadYAML verifies parse errors name the file.
func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	t.Setenv("UI_PASSWORD", "secret")
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("text_buffer: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), FileName) {
		t.Fatalf("expected yaml error, got %v", err)
	}
}

// TestParseEnvLine verifies .env parsing rules.
func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  export B = 'two' ", "B", "two", true},
		{`C="x=y"`, "C", "x=y", true},
		{"# D=4", "", "", false},
		{"", "", "", false},
		{"novalue", "", "", false},
		{"=5", "", "", false},
	}
	for _, tc := range cases {
		key, value, ok := parseEnvLine(tc.line)
		if key != tc.key || value != tc.value || ok != tc.ok {
			t.Fatalf("parseEnvLine(%q) = %q, %q, %v", tc.line, key, value, ok)
		}
	}
}

// TestEnvBool verifies accepted spellings, the unset default and rejection of other values.
func TestEnvBool(t *testing.T) {
	t.Setenv("WINSIM_TEST_BOOL", "on")
	if v, err := envBool("WINSIM_TEST_BOOL", false); err != nil || !v {
		t.Fatalf("expected true, got %v, %v", v, err)
	}
	t.Setenv("WINSIM_TEST_BOOL", "")
	if v, err := envBool("WINSIM_TEST_BOOL", true); err != nil || !v {
		t.Fatalf("expected default, got %v, %v", v, err)
	}
	t.Setenv("WINSIM_TEST_BOOL", "maybe")
	if _, err := envBool("WINSIM_TEST_BOOL", true); err == nil || !strings.Contains(err.Error(), "WINSIM_TEST_BOOL") {
		t.Fatalf("expected error for unknown value, got %v", err)
	}
}
