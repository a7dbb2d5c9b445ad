package condition

import (
	"FsqlFrontEnd/internal/util"
	"errors"
	"reflect"
	"testing"
)

var header = []string{"id", "name", "age"}

func TestEvaluate(t *testing.T) {
	row := []string{"3", "Ana", "30"}

	testCases := []struct {
		name string
		cond Condition
		want bool
	}{
		{name: "always true", cond: AlwaysTrue{}, want: true},
		{name: "integer equal", cond: NewPredicate("age", OpEqual, "30"), want: true},
		{name: "integer greater", cond: NewPredicate("age", OpGreater, "4"), want: true},
		{name: "integer less equal", cond: NewPredicate("age", OpLessEqual, "29"), want: false},
		{name: "word not equal", cond: NewPredicate("name", OpNotEqual, "Bob"), want: true},
		{name: "word less", cond: NewPredicate("name", OpLess, "B"), want: true},
		{
			name: "and",
			cond: &And{Left: NewPredicate("id", OpEqual, "3"), Right: NewPredicate("name", OpEqual, "Bob")},
			want: false,
		},
		{
			name: "or",
			cond: &Or{Left: NewPredicate("id", OpEqual, "1"), Right: NewPredicate("name", OpEqual, "Ana")},
			want: true,
		},
		{name: "not", cond: &Not{Inner: NewPredicate("age", OpGreaterEqual, "18")}, want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cond.Evaluate(header, row)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected result for %s: %v want %v", tc.cond, got, tc.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	row := []string{"3", "Ana", "30"}
	mismatch := NewPredicate("name", OpEqual, "5")

	testCases := []struct {
		name string
		cond Condition
		row  []string
	}{
		{name: "unknown column", cond: NewPredicate("email", OpEqual, "x"), row: row},
		{name: "short row", cond: NewPredicate("age", OpEqual, "30"), row: []string{"3", "Ana"}},
		{name: "word cell integer literal", cond: mismatch, row: row},
		{name: "integer cell word literal", cond: NewPredicate("age", OpEqual, "thirty"), row: row},
		// Or does not short circuit, so the error on the right is reported
		{name: "or right side", cond: &Or{Left: AlwaysTrue{}, Right: mismatch}, row: row},
		{name: "and right side", cond: &And{Left: NewPredicate("id", OpEqual, "9"), Right: mismatch}, row: row},
		{name: "not", cond: &Not{Inner: mismatch}, row: row},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cond.Evaluate(header, tc.row)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			var qe *util.QueryError
			if !errors.As(err, &qe) || qe.Kind != util.KindInvalidColumn {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	cond := &Or{
		Left:  &And{Left: NewPredicate("a", OpEqual, "1"), Right: &Not{Inner: NewPredicate("b", OpLess, "x")}},
		Right: AlwaysTrue{},
	}
	want := "((a = 1 AND NOT b < x) OR TRUE)"
	if got := cond.String(); got != want {
		t.Fatalf("unexpected string: %q want %q", got, want)
	}
}

func TestColumns(t *testing.T) {
	cond := &And{
		Left: &Or{Left: NewPredicate("b", OpEqual, "1"), Right: NewPredicate("a", OpEqual, "2")},
		Right: &Not{Inner: NewPredicate("b", OpGreater, "3")},
	}
	if got, want := Columns(cond), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected columns: %v want %v", got, want)
	}
	if got := Columns(AlwaysTrue{}); len(got) != 0 {
		t.Fatalf("unexpected columns: %v", got)
	}
}
