package senses

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat%1:05:00::", "cat%1:05:00::"},
		{"wn::Cat%1:05:00", "cat%1:05:00::"},
		{"  dog%1:05  ", "dog%1:05:::"},
		{"bark%2", "bark%2::::"},
		{"wn::", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoplist(t *testing.T) {
	s := NewStoplist(
		[]string{"cat%1:05:00::", "wn::dog%1:05:00", ""},
		[]string{"DOG%1:05:00::"},
	)

	if !s.Blocks("cat%1:05:00") {
		t.Error("cat should be blocked")
	}
	if s.Blocks("dog%1:05:00::") {
		t.Error("allow-listed dog should not be blocked")
	}
	if s.Blocks("mammal%1:05:00::") {
		t.Error("unlisted key should not be blocked")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	var nilList *Stoplist
	if nilList.Blocks("cat%1:05:00::") || nilList.Len() != 0 {
		t.Error("nil stoplist must block nothing")
	}
}
