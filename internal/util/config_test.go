package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TableExtension != DefaultTableExtension || cfg.Output != OutputCsv || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Log.MaxSize != 10 || cfg.Log.MaxBackups != 3 || cfg.Log.MaxAge != 28 {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	path := writeConfig(t, "TableExtension: .txt\nOutput: table\nLog:\n  Level: debug\n  MaxAge: 7\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.String("ext", "", "")
	if err := flags.Parse([]string{"--output", "json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := LoadConfig(path, flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != OutputJson {
		t.Fatalf("flag did not override config file: %s", cfg.Output)
	}
	if cfg.TableExtension != ".txt" {
		t.Fatalf("unset flag overrode config file: %s", cfg.TableExtension)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxAge != 7 || cfg.Log.MaxBackups != 3 {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("FSQL_OUTPUT", "table")

	cfg, err := LoadConfig(writeConfig(t, ""), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != OutputTable {
		t.Fatalf("unexpected output: %s", cfg.Output)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error, got nil")
	}

	saved := DefaultConfigPath
	DefaultConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { DefaultConfigPath = saved }()

	if _, err := LoadConfig(DefaultConfigPath, nil); err != nil {
		t.Fatalf("missing default config file: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr bool
	}{
		{name: "valid", content: "Output: auto\nTableExtension: .tbl\n"},
		{name: "bad output", content: "Output: xml\n", expectErr: true},
		{name: "extension without dot", content: "TableExtension: csv\n", expectErr: true},
		{name: "extension with separator", content: "TableExtension: ./x\n", expectErr: true},
		{name: "bad log level", content: "Log:\n  Level: loud\n", expectErr: true},
		{name: "negative rotation", content: "Log:\n  MaxSize: -1\n", expectErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content), nil)
			if tc.expectErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
