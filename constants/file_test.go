package constants

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{".PDF", "pdf"},
		{"jpg", "jpg"},
		{".Jpeg", "jpeg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeExt(tt.in); got != tt.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsAllowedExt(t *testing.T) {
	for _, ext := range []string{".pdf", ".PNG", "txt"} {
		if !IsAllowedExt(ext) {
			t.Errorf("IsAllowedExt(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".exe", ".zip", ""} {
		if IsAllowedExt(ext) {
			t.Errorf("IsAllowedExt(%q) = true, want false", ext)
		}
	}
}

func TestMIMEForExt(t *testing.T) {
	if got := MIMEForExt(".pdf"); got != "application/pdf" {
		t.Errorf("MIMEForExt(.pdf) = %q", got)
	}
	if got := MIMEForExt(".weird"); got != "application/octet-stream" {
		t.Errorf("MIMEForExt(.weird) = %q, want octet-stream fallback", got)
	}
}
