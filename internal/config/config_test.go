package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Natwar589/chatkit-implementation/internal/paths"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	conf := LoadAppConfig()
	if conf.UI.Color != "auto" {
		t.Errorf("expected default color 'auto', got %q", conf.UI.Color)
	}
	if conf.FrontendDir != "" {
		t.Errorf("expected empty FrontendDir by default, got %q", conf.FrontendDir)
	}

	// Loading must never create the settings file
	if _, err := os.Stat(paths.GetConfigFilePath()); !os.IsNotExist(err) {
		t.Errorf("LoadAppConfig created %s", paths.GetConfigFilePath())
	}
}

func TestLoadAppConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	content := "[ui]\ncolor = \"never\"\n\n[paths]\nfrontend_folder = \"/srv/frontend\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf := LoadAppConfig()
	if conf.UI.Color != "never" {
		t.Errorf("expected color 'never', got %q", conf.UI.Color)
	}
	if conf.FrontendDir != "/srv/frontend" {
		t.Errorf("expected FrontendDir '/srv/frontend', got %q", conf.FrontendDir)
	}
}

func TestLoadAppConfigMalformed(t *testing.T) {
	tempDir := t.TempDir()
	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	conf := LoadAppConfig()
	if conf.UI.Color != "auto" {
		t.Errorf("malformed file should fall back to defaults, got color %q", conf.UI.Color)
	}
}

func TestExpandVariables(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := ExpandVariables("${HOME}/frontend"); got != home+"/frontend" {
		t.Errorf("ExpandVariables(${HOME}/frontend) = %q", got)
	}
}
