package platform

import (
	"strings"
	"testing"
)

func TestOpenerCommand(t *testing.T) {
	tests := []struct {
		goos         string
		expectedName string
	}{
		{"darwin", MacOSOpenCommand},
		{"ios", MacOSOpenCommand},
		{"windows", WindowsCmdCommand},
		{"android", AndroidAmCommand},
		{"linux", LinuxOpenCommand},
		{"freebsd", LinuxOpenCommand},
	}

	target := "https://example.com/detail"
	for _, test := range tests {
		name, args := openerCommand(test.goos, target)
		if name != test.expectedName {
			t.Errorf("openerCommand(%s) name = %s, expected %s", test.goos, name, test.expectedName)
		}

		if !strings.Contains(strings.Join(args, " "), target) {
			t.Errorf("openerCommand(%s) args %v should contain the target URL", test.goos, args)
		}
	}
}

func TestViewers_RejectNilTarget(t *testing.T) {
	if err := (SystemViewer{}).Open(nil); err == nil {
		t.Error("Expected error opening nil target with SystemViewer")
	}

	viewer := &AppViewer{}
	if err := viewer.Open(nil); err == nil {
		t.Error("Expected error opening nil target with AppViewer")
	}
}
