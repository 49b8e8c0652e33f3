package token

import (
	"errors"
	"testing"
)

func TestTableEncodeDecode(t *testing.T) {
	table := NewTable("color", []Entry[int]{
		{Name: "red", Code: 1},
		{Name: "green", Code: 2},
		{Name: "blue", Code: 3},
	})

	code, err := table.Encode("green")
	if err != nil {
		t.Fatalf("Encode(green) returned error: %v", err)
	}
	if code != 2 {
		t.Errorf("Encode(green) = %d, want 2", code)
	}

	if got := table.Decode(3); got != "blue" {
		t.Errorf("Decode(3) = %q, want %q", got, "blue")
	}
	if got := table.Decode(99); got != "" {
		t.Errorf("Decode(99) = %q, want empty", got)
	}
}

func TestTableEncodeUnknown(t *testing.T) {
	table := NewTable("color", []Entry[int]{{Name: "red", Code: 1}})

	_, err := table.Encode("magenta")
	if err == nil {
		t.Fatal("Encode of unknown name should fail")
	}

	var unknown *UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownError", err)
	}
	if unknown.Domain != "color" || unknown.Name != "magenta" {
		t.Errorf("UnknownError = %+v, want domain color name magenta", unknown)
	}
}

func TestTableDuplicateCodeKeepsFirstName(t *testing.T) {
	table := NewTable("dup", []Entry[int]{
		{Name: "first", Code: 7},
		{Name: "alias", Code: 7},
	})

	if got := table.Decode(7); got != "first" {
		t.Errorf("Decode(7) = %q, want %q", got, "first")
	}

	// Both names still encode.
	for _, name := range []string{"first", "alias"} {
		code, err := table.Encode(name)
		if err != nil || code != 7 {
			t.Errorf("Encode(%s) = %d, %v, want 7, nil", name, code, err)
		}
	}
}

func TestTableNamesOrder(t *testing.T) {
	table := NewTable("ordered", []Entry[int]{
		{Name: "c", Code: 3},
		{Name: "a", Code: 1},
		{Name: "b", Code: 2},
	})

	want := []string{"c", "a", "b"}
	got := table.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTableHas(t *testing.T) {
	table := NewTable("h", []Entry[int]{{Name: "x", Code: 1}})
	if !table.Has("x") {
		t.Error("Has(x) = false, want true")
	}
	if table.Has("y") {
		t.Error("Has(y) = true, want false")
	}
}
