package paths

import (
	"path/filepath"
	"testing"
)

func TestGetEnvFilePaths(t *testing.T) {
	FrontendDirOverride = filepath.Join("some", "frontend")
	defer func() { FrontendDirOverride = "" }()

	if got, want := GetEnvFilePath(), filepath.Join("some", "frontend", ".env"); got != want {
		t.Errorf("GetEnvFilePath() = %q; want %q", got, want)
	}
	if got, want := GetEnvExampleFilePath(), filepath.Join("some", "frontend", ".env.example"); got != want {
		t.Errorf("GetEnvExampleFilePath() = %q; want %q", got, want)
	}
}

func TestGetConfigFilePathOverride(t *testing.T) {
	ConfigHomeOverride = filepath.Join("tmp", "confighome")
	defer func() { ConfigHomeOverride = "" }()

	got := GetConfigFilePath()
	if filepath.Base(got) != "envcheck.toml" {
		t.Errorf("GetConfigFilePath() = %q; want envcheck.toml basename", got)
	}
	if !filepath.IsAbs(got) && filepath.Dir(filepath.Dir(got)) != filepath.Join("tmp", "confighome") {
		t.Errorf("GetConfigFilePath() = %q; want under %q", got, ConfigHomeOverride)
	}
}
