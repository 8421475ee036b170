package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(r.All()); got != 12 {
		t.Fatalf("len(All()) = %d, want 12", got)
	}
	c, ok := r.Find("Björn Vogel")
	if !ok {
		t.Fatal("Find(Björn Vogel) not found")
	}
	if c.Club != "RMV Mosnang" {
		t.Errorf("club = %q, want RMV Mosnang", c.Club)
	}
	if _, ok := r.Find("björn vogel"); ok {
		t.Error("Find should match names exactly")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := "contestants:\n  - name: A\n    club: X\n  - name: B\n    club: Y\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	all := r.All()
	if len(all) != 2 || all[0].Name != "A" || all[1].Club != "Y" {
		t.Fatalf("All() = %+v", all)
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name string
		in   []Contestant
	}{
		{"empty", nil},
		{"missing club", []Contestant{{Name: "A"}}},
		{"blank name", []Contestant{{Name: "  ", Club: "X"}}},
		{"duplicate", []Contestant{{Name: "A", Club: "X"}, {Name: "A", Club: "Y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.in); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r, err := New([]Contestant{{Name: "A", Club: "X"}})
	if err != nil {
		t.Fatal(err)
	}
	all := r.All()
	all[0].Name = "changed"
	if _, ok := r.Find("A"); !ok {
		t.Error("mutating All() result changed the roster")
	}
}
