package platform

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// File naming
const (
	ImageExtension    = ".png"
	FallbackFileName  = "nasa-image"
	MaxFileNameLength = 80
	MaxNameAttempts   = 1000
)

// Characters that are invalid in file names on at least one supported OS
var invalidFileNameChars = `<>:"/\|?*`

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrap(err, "file does not exist")
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return errors.Newf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return errors.New("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// Fyne Android apps run as libdist.so
	isAndroid := runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"

	if isAndroid {
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFileName turns an image title into a safe base file name
func SanitizeFileName(title string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case r == ' ' || r == '\t':
			if lastSpace {
				continue
			}
			r = ' '
		case strings.ContainsRune(invalidFileNameChars, r) || r < 0x20:
			r = '_'
		}
		lastSpace = r == ' '
		b.WriteRune(r)
	}

	name := strings.Trim(b.String(), " .")
	if runes := []rune(name); len(runes) > MaxFileNameLength {
		name = strings.TrimRight(string(runes[:MaxFileNameLength]), " .")
	}
	if name == "" {
		return FallbackFileName
	}
	return name
}

// UniquePath returns dir/base+ext, or the first "base (n)+ext" that does not
// exist yet.
func UniquePath(dir, base, ext string) (string, error) {
	candidate := filepath.Join(dir, base+ext)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	}

	for i := 1; i < MaxNameAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", errors.Newf("no free file name for %q in %s", base, dir)
}

// SaveImagePNG encodes img as PNG into dir, naming the file after title.
// It returns the path written.
func SaveImagePNG(dir, title string, img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("no image to save")
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}

	path, err := UniquePath(dir, SanitizeFileName(title), ImageExtension)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
