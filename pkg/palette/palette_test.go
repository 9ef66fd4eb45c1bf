package palette

import "testing"

func TestDefault(t *testing.T) {
	p := Default()
	if len(p) != 8 {
		t.Fatalf("len(Default()) = %d, want 8", len(p))
	}
	want := []string{"yellow", "purple", "red", "orange", "white", "black", "green", "blue"}
	for i, name := range want {
		if p.Name(i) != name {
			t.Errorf("Name(%d) = %q, want %q", i, p.Name(i), name)
		}
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestAt(t *testing.T) {
	p := Default()
	tests := []struct {
		tag  int
		want string
	}{
		{0, "yellow"},
		{7, "blue"},
		{8, "yellow"},
		{10, "red"},
		{-3, "yellow"},
	}
	for _, tt := range tests {
		if got := p.Name(tt.tag); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.tag, got, tt.want)
		}
	}

	var empty Palette
	if got := empty.Hex(3); got != "#ffff00" {
		t.Errorf("empty palette Hex = %q, want default yellow", got)
	}
}

func TestIndex(t *testing.T) {
	p := Default()
	if got := p.Index("Green"); got != 6 {
		t.Errorf("Index(Green) = %d, want 6", got)
	}
	if got := p.Index("teal"); got != -1 {
		t.Errorf("Index(teal) = %d, want -1", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Palette
		wantErr bool
	}{
		{"ok", Palette{{Name: "teal", Hex: "#008080"}}, false},
		{"upper case hex", Palette{{Name: "teal", Hex: "#00FF80"}}, false},
		{"missing name", Palette{{Hex: "#008080"}}, true},
		{"short hex", Palette{{Name: "teal", Hex: "#088"}}, true},
		{"no hash", Palette{{Name: "teal", Hex: "0080800"}}, true},
		{"bad digit", Palette{{Name: "teal", Hex: "#00808g"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
