package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
)

// OS opener commands
const (
	MacOSOpenCommand  = "open"
	LinuxOpenCommand  = "xdg-open"
	WindowsCmdCommand = "cmd"
	WindowsCmdFlag    = "/c"
	WindowsStartVerb  = "start"
	AndroidAmCommand  = "am"
	AndroidViewAction = "android.intent.action.VIEW"
)

// Viewer displays a catalog detail page in an external browsing surface.
// The app only hands over a URL; rendering belongs to the OS.
type Viewer interface {
	Open(target *url.URL) error
}

// AppViewer opens detail pages through the Fyne application, which routes to
// the system browser on desktop and the in-app surface on mobile.
type AppViewer struct {
	app fyne.App
}

// NewAppViewer creates a viewer backed by the running Fyne app
func NewAppViewer(app fyne.App) *AppViewer {
	return &AppViewer{app: app}
}

// Open implements Viewer
func (v *AppViewer) Open(target *url.URL) error {
	if target == nil {
		return fmt.Errorf("no target URL to open")
	}
	return v.app.OpenURL(target)
}

// SystemViewer shells out to the OS opener. Fallback for environments where
// no Fyne app is available (tooling, headless debugging).
type SystemViewer struct{}

// Open implements Viewer
func (SystemViewer) Open(target *url.URL) error {
	if target == nil {
		return fmt.Errorf("no target URL to open")
	}

	name, args := openerCommand(runtime.GOOS, target.String())
	return exec.Command(name, args...).Start()
}

// openerCommand returns the per-OS command line that opens a URL in the
// default browser
func openerCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin", "ios":
		return MacOSOpenCommand, []string{target}
	case "windows":
		return WindowsCmdCommand, []string{WindowsCmdFlag, WindowsStartVerb, "", target}
	case "android":
		return AndroidAmCommand, []string{"start", "-a", AndroidViewAction, "-d", target}
	default:
		return LinuxOpenCommand, []string{target}
	}
}
