package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rcliao/style-kb/internal/model"
	"github.com/rcliao/style-kb/internal/store"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI against a SQLite file in dir and returns stdout.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{
		"--storage", "sqlite",
		"--db", filepath.Join(dir, "styles.db"),
		"--log-level", "error",
	}, args...))
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func newDir(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func TestListSeedsSamples(t *testing.T) {
	dir := newDir(t)

	var records []model.StyleRecord
	if err := json.Unmarshal([]byte(run(t, dir, "list")), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 sample styles, got %d", len(records))
	}

	out := run(t, dir, "list", "-q", "bauhaus", "--ids-only")
	if !strings.Contains(out, "包豪斯") || strings.Count(out, "\n") != 1 {
		t.Errorf("unexpected filtered output %q", out)
	}
}

func TestPutEditRm(t *testing.T) {
	dir := newDir(t)

	var rec model.StyleRecord
	out := run(t, dir, "put", "--name-cn", "侘寂风", "--definition", "接受不完美", "--tags", "日式, 自然", "-c", "室内专属")
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("parse %q: %v", out, err)
	}
	if rec.ID == "" || rec.CategoryType != model.Interior {
		t.Errorf("unexpected record %+v", rec)
	}
	if len(rec.Tags) != 2 || rec.Tags[1] != "自然" {
		t.Errorf("unexpected tags %v", rec.Tags)
	}

	var edited model.StyleRecord
	out = run(t, dir, "edit", rec.ID, "--set", "nameEn=Wabi-sabi", "--set", "tags=a,b,c")
	if err := json.Unmarshal([]byte(out), &edited); err != nil {
		t.Fatal(err)
	}
	if edited.NameEn != "Wabi-sabi" || len(edited.Tags) != 3 || edited.CreatedAt != rec.CreatedAt {
		t.Errorf("unexpected edit result %+v", edited)
	}

	var got model.StyleRecord
	json.Unmarshal([]byte(run(t, dir, "get", rec.ID)), &got)
	if got.NameEn != "Wabi-sabi" {
		t.Errorf("edit not persisted: %+v", got)
	}

	out = run(t, dir, "rm", rec.ID)
	if !strings.Contains(out, `"ok":true`) {
		t.Errorf("unexpected rm output %q", out)
	}
	// Removing again is a no-op.
	run(t, dir, "rm", rec.ID)

	var records []model.StyleRecord
	json.Unmarshal([]byte(run(t, dir, "list")), &records)
	if len(records) != 5 {
		t.Errorf("expected 5 records after rm, got %d", len(records))
	}
}

func TestExportImportXLSX(t *testing.T) {
	dir := newDir(t)
	file := filepath.Join(dir, "styles.xlsx")

	out := run(t, dir, "export", "--xlsx", file)
	if !strings.Contains(out, `"count":5`) {
		t.Errorf("unexpected export output %q", out)
	}

	var res struct {
		OK       bool `json:"ok"`
		Imported int  `json:"imported"`
	}
	if err := json.Unmarshal([]byte(run(t, dir, "import", file)), &res); err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.Imported != 5 {
		t.Errorf("unexpected import result %+v", res)
	}

	var st store.Stats
	json.Unmarshal([]byte(run(t, dir, "stats")), &st)
	if st.Total != 10 {
		t.Errorf("expected 10 records, got %d", st.Total)
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	boom := errors.New("boom")

	err := writeFile(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected partial file removed, stat: %v", err)
	}

	if err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "done")
		return err
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "done" {
		t.Errorf("expected file contents, got %q", data)
	}

	if err := writeFile(filepath.Join(path, "nested"), func(io.Writer) error { return nil }); err == nil {
		t.Error("expected create error under a regular file")
	}
}

func TestTags(t *testing.T) {
	dir := newDir(t)

	var tags []store.TagCount
	if err := json.Unmarshal([]byte(run(t, dir, "tags", "--limit", "3")), &tags); err != nil {
		t.Fatal(err)
	}
	if len(tags) != 3 {
		t.Errorf("expected 3 tags, got %d", len(tags))
	}
}

func TestSetPairs(t *testing.T) {
	var p model.StylePatch
	if err := setPairs(&p, []string{"definition=a=b", "categoryType=通用"}); err != nil {
		t.Fatal(err)
	}
	if p.Text["definition"] != "a=b" || p.Category == nil || *p.Category != model.General {
		t.Errorf("unexpected patch %+v", p)
	}
	if err := setPairs(&p, []string{"noequals"}); err == nil {
		t.Error("expected error for missing =")
	}
	if err := setPairs(&p, []string{"id=x"}); err == nil {
		t.Error("expected error for id")
	}
}
