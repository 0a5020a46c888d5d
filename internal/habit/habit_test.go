package habit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIDs_DisplayOrder(t *testing.T) {
	t.Parallel()

	want := []ID{"no-sugar", "water-only", "exercise-day", "no-snacks", "low-screen", "read"}
	if diff := cmp.Diff(want, IDs()); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
	if len(All()) != Count {
		t.Errorf("len(All()) = %d, want %d", len(All()), Count)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    ID
		wantErr bool
	}{
		{input: "no-sugar", want: NoSugar},
		{input: "read", want: Read},
		{input: "Read", wantErr: true},
		{input: "meditate", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknown) {
					t.Errorf("Parse(%q) error = %v, want ErrUnknown", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Parse(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	for i, id := range IDs() {
		if got := Index(id); got != i {
			t.Errorf("Index(%q) = %d, want %d", id, got, i)
		}
	}
	if got := Index("meditate"); got != -1 {
		t.Errorf("Index(unknown) = %d, want -1", got)
	}
}

func TestTips(t *testing.T) {
	t.Parallel()

	for _, id := range IDs() {
		if n := len(Tips(id)); n == 0 {
			t.Errorf("Tips(%q) is empty", id)
		}
	}
	if Tips("meditate") != nil {
		t.Error("Tips(unknown) should be nil")
	}

	list := Tips(Read)
	list[0] = "changed"
	if Tips(Read)[0] == "changed" {
		t.Error("Tips() returned the shared slice")
	}
}

func TestAdvisories_ReferenceCatalog(t *testing.T) {
	t.Parallel()

	for _, a := range Advisories() {
		if !Valid(a.When) || !Valid(a.On) {
			t.Errorf("advisory %+v references an unknown habit", a)
		}
		if a.When == a.On {
			t.Errorf("advisory %+v is self-referential", a)
		}
	}
}
