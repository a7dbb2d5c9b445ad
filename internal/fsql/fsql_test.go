package fsql

import (
	"FsqlFrontEnd/internal/operation"
	"FsqlFrontEnd/internal/util"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "id,name,age\n1,Ana,30\n2,Bob,17\n10,Eve,45\n"
	if err := os.WriteFile(filepath.Join(dir, "people.csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return dir
}

func TestRunCsv(t *testing.T) {
	dir := setupDir(t)

	var out bytes.Buffer
	if err := Run(&out, dir, "SELECT name, age FROM people WHERE age >= 18 ORDER BY name DESC"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "name,age\nEve,45\nAna,30\n"; got != want {
		t.Fatalf("unexpected output: %q want %q", got, want)
	}

	out.Reset()
	if err := Run(&out, dir, "DELETE FROM people WHERE age < 18"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "delete completed: 1 row(s)\n"; got != want {
		t.Fatalf("unexpected output: %q want %q", got, want)
	}
}

func TestRunError(t *testing.T) {
	dir := setupDir(t)

	var out bytes.Buffer
	err := Run(&out, dir, "SELECT email FROM people")
	if util.ExitCodeOf(err) != util.ErrorInvalidColumn {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("partial output on failure: %q", out.String())
	}
}

func TestRenderJson(t *testing.T) {
	op := &operation.Select{Columns: []string{"id", "first.name"}}
	result := &operation.Result{
		Columns: []string{"id", "first.name"},
		Rows:    [][]string{{"1", "Ana"}, {"2", "Bob"}},
	}

	var out bytes.Buffer
	if err := Render(&out, op, result, util.OutputJson); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := out.String()
	if !gjson.Valid(doc) {
		t.Fatalf("invalid JSON: %s", doc)
	}
	if n := gjson.Get(doc, "#").Int(); n != 2 {
		t.Fatalf("unexpected row count: %d", n)
	}
	if id := gjson.Get(doc, "1.id"); id.Type != gjson.String || id.String() != "2" {
		t.Fatalf("unexpected id: %s", id.Raw)
	}
	if name := gjson.Get(doc, `0.first\.name`).String(); name != "Ana" {
		t.Fatalf("unexpected name: %s", name)
	}

	var keys []string
	gjson.Get(doc, "0").ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	if strings.Join(keys, ",") != "id,first.name" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}

func TestRenderJsonEmptyAndMessage(t *testing.T) {
	var out bytes.Buffer
	if err := Render(&out, &operation.Select{}, &operation.Result{Columns: []string{"id"}}, util.OutputJson); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Fatalf("unexpected output: %s", got)
	}

	out.Reset()
	result := &operation.Result{Message: "insert completed: 2 row(s)"}
	if err := Render(&out, &operation.Insert{}, result, util.OutputJson); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gjson.Get(out.String(), "message").String(); got != result.Message {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestRenderTable(t *testing.T) {
	result := &operation.Result{Columns: []string{"id", "name"}, Rows: [][]string{{"1", "Ana"}}}

	var out bytes.Buffer
	if err := Render(&out, &operation.Select{}, result, util.OutputTable); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"id", "name", "Ana", "+"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("table output missing %q: %s", s, out.String())
		}
	}
}

func TestExplain(t *testing.T) {
	var out bytes.Buffer
	err := Explain(&out, "/data", "UPDATE people SET age = 31 WHERE id = 1 AND NOT name = Bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tree := out.String()
	for _, s := range []string{"UPDATE", "/data/people.csv", "age = 31", "[id, name]", "AND", "NOT", "name = Bob"} {
		if !strings.Contains(tree, s) {
			t.Fatalf("explain output missing %q:\n%s", s, tree)
		}
	}
}

func TestPrintConfig(t *testing.T) {
	var out bytes.Buffer
	if err := PrintConfig(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "TableExtension: .csv") {
		t.Fatalf("unexpected config output: %s", out.String())
	}
}
