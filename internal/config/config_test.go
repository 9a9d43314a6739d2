package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/rcliao/style-kb/internal/store"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load(New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Storage.Type != "sqlite" {
		t.Errorf("expected sqlite, got %q", c.Storage.Type)
	}
	if filepath.Base(c.Storage.Path) != "style-kb.db" {
		t.Errorf("unexpected default path %q", c.Storage.Path)
	}
	if c.Storage.Key != store.DefaultKey {
		t.Errorf("expected default key, got %q", c.Storage.Key)
	}
	if c.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("unexpected addr %q", c.Server.Addr)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STYLE_KB_STORAGE_TYPE", "redis")
	t.Setenv("STYLE_KB_STORAGE_URL", "redis://localhost:6379/0")
	t.Setenv("STYLE_KB_S3_BUCKET", "styles")

	c, err := Load(New(), "")
	if err != nil {
		t.Fatal(err)
	}
	kc := c.KV()
	if kc.Type != "redis" || kc.URL != "redis://localhost:6379/0" {
		t.Errorf("unexpected kv config %+v", kc)
	}
	if kc.S3.Bucket != "styles" {
		t.Errorf("expected bucket from env, got %q", kc.S3.Bucket)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "style-kb.toml")
	content := `
[storage]
type = "postgres"
url = "postgres://localhost/styles"

[server]
addr = ":9090"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Storage.Type != "postgres" || c.Storage.URL != "postgres://localhost/styles" {
		t.Errorf("unexpected storage %+v", c.Storage)
	}
	if c.Server.Addr != ":9090" || c.Log.Level != "debug" {
		t.Errorf("unexpected server/log %+v %+v", c.Server, c.Log)
	}

	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestFlagsWin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STYLE_KB_STORAGE_TYPE", "redis")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage", "", "")
	fs.String("db", "", "")
	if err := fs.Parse([]string{"--storage", "memory", "--db", "~/styles.db"}); err != nil {
		t.Fatal(err)
	}

	v := New()
	if err := BindFlags(v, fs); err != nil {
		t.Fatal(err)
	}
	c, err := Load(v, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Storage.Type != "memory" {
		t.Errorf("expected flag to win, got %q", c.Storage.Type)
	}
	home, _ := os.UserHomeDir()
	if c.Storage.Path != filepath.Join(home, "styles.db") {
		t.Errorf("expected ~ expanded, got %q", c.Storage.Path)
	}
}
