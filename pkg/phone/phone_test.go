package phone

import "testing"

func TestNormalize_Bare10(t *testing.T) {
	got, err := Normalize("9876543210")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "+919876543210" {
		t.Fatalf("got %q, want +919876543210", got)
	}
}

func TestNormalize_AlreadyPrefixed(t *testing.T) {
	got, err := Normalize("+919876543210")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "+919876543210" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, in := range []string{"", "12345", "98765abc10", "987654321012"} {
		if _, err := Normalize(in); err == nil {
			t.Fatalf("Normalize(%q) accepted, want error", in)
		}
	}
}
