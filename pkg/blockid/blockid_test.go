package blockid

import "testing"

func TestDescribe(t *testing.T) {
	all := make([]Key, 0, States)
	for s := range States {
		all = append(all, Key{ID: 35, State: s})
	}
	tests := []struct {
		name string
		keys []Key
		want string
	}{
		{"empty", nil, ""},
		{"single", []Key{{1, 0}}, "1:0"},
		{"full run", all, "35:0-15"},
		{"gaps", []Key{{26, 0}, {26, 4}, {26, 5}, {26, 6}, {26, 9}}, "26:0,4-6,9"},
		{"several ids", []Key{{8, 0}, {9, 0}, {43, 2}, {43, 3}}, "8:0 9:0 43:2-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.keys); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	for _, k := range []Key{{0, 0}, {Count - 1, States - 1}} {
		if !k.Valid() {
			t.Errorf("%v should be valid", k)
		}
	}
	for _, k := range []Key{{-1, 0}, {Count, 0}, {0, -1}, {0, States}} {
		if k.Valid() {
			t.Errorf("%v should be invalid", k)
		}
	}
}
