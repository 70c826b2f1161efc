package platform

import (
	"runtime"
	"testing"

	"github.com/aligator/gofatfs/internal/utf16x"
)

func TestIsAbsolutePOSIX(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/", want: true},
		{path: "/usr/bin", want: true},
		{path: "fat:/data", want: true},
		{path: "sd:/", want: true},
		{path: ":/data", want: false},
		{path: "fat:/a:/b", want: false},
		{path: "relative/path", want: false},
		{path: "c:relative", want: false},
		{path: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsAbsolutePOSIX(tt.path); got != tt.want {
				t.Errorf("IsAbsolutePOSIX(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsAbsoluteWindows(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: `\`, want: true},
		{path: `\Windows`, want: true},
		{path: `C:\Windows`, want: true},
		{path: `C:`, want: true},
		{path: `C`, want: false},
		{path: `dir\file`, want: false},
		{path: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsAbsoluteWindows(tt.path); got != tt.want {
				t.Errorf("IsAbsoluteWindows(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	want := IsAbsolutePOSIX("fat:/x")
	if runtime.GOOS == "windows" {
		want = IsAbsoluteWindows("fat:/x")
	}
	if got := IsAbsolute("fat:/x"); got != want {
		t.Errorf("IsAbsolute() = %v, want %v", got, want)
	}
	if got := IsAbsoluteUTF16(utf16x.FromStringTerminated("fat:/x")); got != want {
		t.Errorf("IsAbsoluteUTF16() = %v, want %v", got, want)
	}
}

func TestGetRootNameLength(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "sd:/data", want: 3},
		{path: "fat:/", want: 4},
		{path: `C:\`, want: 2},
		{path: "/usr", want: 0},
		{path: "", want: 0},
	}
	for _, tt := range tests {
		if got := GetRootNameLength(tt.path); got != tt.want {
			t.Errorf("GetRootNameLength(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsRoot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/", want: true},
		{path: "fat:/", want: true},
		{path: "sd:/", want: true},
		{path: "sd:/data", want: false},
		{path: "//", want: false},
		{path: "", want: false},
	}
	for _, tt := range tests {
		if got := IsRoot(tt.path); got != tt.want {
			t.Errorf("IsRoot(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
