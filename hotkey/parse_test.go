package hotkey

import "testing"

func TestParseChord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "single modifier",
			input: "ctrl+space",
			want:  "ctrl+space",
		},
		{
			name:  "multiple modifiers normalized",
			input: "shift+ctrl+p",
			want:  "ctrl+shift+p",
		},
		{
			name:  "case insensitive",
			input: "Ctrl+Shift+P",
			want:  "ctrl+shift+p",
		},
		{
			name:  "duplicate modifiers collapse",
			input: "ctrl+control+space",
			want:  "ctrl+space",
		},
		{
			name:  "bare key",
			input: "f9",
			want:  "f9",
		},
		{
			name:  "alt aliases",
			input: "option+tab",
			want:  "alt+tab",
		},
		{
			name:  "super aliases",
			input: "win+enter",
			want:  "super+enter",
		},
		{
			name:    "empty chord",
			input:   "",
			wantErr: true,
		},
		{
			name:    "trailing separator",
			input:   "ctrl+",
			wantErr: true,
		},
		{
			name:    "unknown key",
			input:   "ctrl+butterfly",
			wantErr: true,
		},
		{
			name:    "unknown modifier",
			input:   "hyper+space",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseChord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := c.String(); got != tt.want {
				t.Errorf("ParseChord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseChordPrimaryModifier(t *testing.T) {
	for _, input := range []string{"CmdOrCtrl+Space", "primary+space"} {
		c, err := ParseChord(input)
		if err != nil {
			t.Fatalf("ParseChord(%q) error = %v", input, err)
		}
		if len(c.Mods) != 1 || c.Mods[0] != primaryModifier {
			t.Errorf("ParseChord(%q) mods = %v, want [%v]", input, c.Mods, primaryModifier)
		}
		if c.Key != "space" {
			t.Errorf("ParseChord(%q) key = %q, want %q", input, c.Key, "space")
		}
	}
}

func TestParseChordPrimaryEqualsExplicit(t *testing.T) {
	primary, err := ParseChord("CmdOrCtrl+Space")
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := ParseChord(primaryModifier.String() + "+space")
	if err != nil {
		t.Fatal(err)
	}
	if primary.String() != explicit.String() {
		t.Errorf("canonical forms differ: %q vs %q", primary.String(), explicit.String())
	}
}
