package table

import (
	"FsqlFrontEnd/internal/util"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func readTable(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(content)
}

func TestScanner(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		header  []string
		rows    [][]string
	}{
		{
			name:    "trailing newline",
			content: "id,name\n1,Ana\n2,Bob\n",
			header:  []string{"id", "name"},
			rows:    [][]string{{"1", "Ana"}, {"2", "Bob"}},
		},
		{
			name:    "no trailing newline",
			content: "id,name\n1,Ana",
			header:  []string{"id", "name"},
			rows:    [][]string{{"1", "Ana"}},
		},
		{
			name:    "crlf",
			content: "id,name\r\n1,Ana\r\n",
			header:  []string{"id", "name"},
			rows:    [][]string{{"1", "Ana"}},
		},
		{
			name:    "blank lines skipped",
			content: "id,name\n\n1,Ana\n\n",
			header:  []string{"id", "name"},
			rows:    [][]string{{"1", "Ana"}},
		},
		{
			name:    "header only",
			content: "id,name\n",
			header:  []string{"id", "name"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(writeTable(t, tc.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer s.Close()

			if !reflect.DeepEqual(s.Header(), tc.header) {
				t.Fatalf("unexpected header: %v want %v", s.Header(), tc.header)
			}
			var rows [][]string
			for {
				row, ok, err := s.Next()
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !ok {
					break
				}
				rows = append(rows, row)
			}
			if !reflect.DeepEqual(rows, tc.rows) {
				t.Fatalf("unexpected rows: %v want %v", rows, tc.rows)
			}
		})
	}
}

func TestOpenInvalidTable(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.csv")},
		{name: "empty file", path: writeTable(t, "")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.path)
			if util.KindOf(err) != util.KindInvalidTable {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	path := writeTable(t, "id,name\n1,Ana\n2,Bob\n3,Eve")

	stats, err := Rewrite(path, func(header []string, row []string) (Action, []string, error) {
		switch row[0] {
		case "1":
			return Replace, []string{"1", "Ann"}, nil
		case "2":
			return Drop, nil, nil
		}
		return Keep, nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *stats != (RewriteStats{Kept: 1, Replaced: 1, Dropped: 1}) {
		t.Fatalf("unexpected stats: %+v", *stats)
	}
	if got, want := readTable(t, path), "id,name\n1,Ann\n3,Eve\n"; got != want {
		t.Fatalf("unexpected content: %q want %q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("unexpected mode: %v", info.Mode().Perm())
	}
}

func TestRewriteFailureKeepsTable(t *testing.T) {
	content := "id,name\n1,Ana\n2,Bob\n"
	path := writeTable(t, content)
	failure := errors.New("boom")

	_, err := Rewrite(path, func(header []string, row []string) (Action, []string, error) {
		if row[0] == "2" {
			return Keep, nil, failure
		}
		return Drop, nil, nil
	})
	if !errors.Is(err, failure) {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readTable(t, path); got != content {
		t.Fatalf("table modified: %q", got)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary file left behind: %v", entries)
	}
}

func TestAppend(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "trailing newline", content: "id,name\n1,Ana\n", want: "id,name\n1,Ana\n2,Bob\n3,Eve\n"},
		{name: "missing newline", content: "id,name\n1,Ana", want: "id,name\n1,Ana\n2,Bob\n3,Eve\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := writeTable(t, tc.content)
			if err := Append(path, [][]string{{"2", "Bob"}, {"3", "Eve"}}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readTable(t, path); got != tc.want {
				t.Fatalf("unexpected content: %q want %q", got, tc.want)
			}
		})
	}
}

func TestWriteRejectsUnstorableFields(t *testing.T) {
	content := "id,name\n1,Ana\n"

	path := writeTable(t, content)
	err := Append(path, [][]string{{"2", "Bob"}, {"3", "Cara,Extra"}})
	if util.KindOf(err) != util.KindInvalidSyntax {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readTable(t, path); got != content {
		t.Fatalf("table modified: %q", got)
	}

	_, err = Rewrite(path, func(header []string, row []string) (Action, []string, error) {
		return Replace, []string{row[0], "a\nb"}, nil
	})
	if util.KindOf(err) != util.KindInvalidSyntax {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readTable(t, path); got != content {
		t.Fatalf("table modified: %q", got)
	}
}

func TestAppendMissingTable(t *testing.T) {
	err := Append(filepath.Join(t.TempDir(), "missing.csv"), [][]string{{"1"}})
	if util.KindOf(err) != util.KindInvalidTable {
		t.Fatalf("unexpected error: %v", err)
	}
}
