package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

const (
	// Name is the library name used in the User-Agent header.
	Name = "gofetch"
	// ModulePath is the Go module path of the library.
	ModulePath = "github.com/kbukum/gofetch"
)

// Version is set at build time using -ldflags. When empty the module version
// from the build info is used.
var Version = ""

var (
	resolved    string
	resolveOnce sync.Once
	readBuild   = debug.ReadBuildInfo
)

// Info represents version information.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// Get returns the resolved library version.
func Get() string {
	if Version != "" {
		return Version
	}
	resolveOnce.Do(func() {
		resolved = fromBuildInfo()
	})
	return resolved
}

// UserAgent returns the identifying User-Agent value, e.g. "gofetch/v1.2.0".
func UserAgent() string {
	return Name + "/" + Get()
}

// GetVersionInfo returns version information.
func GetVersionInfo() *Info {
	v := Get()
	info := &Info{
		Name:      Name,
		Version:   v,
		IsRelease: v != "dev" && !strings.Contains(v, "dirty") && !strings.Contains(v, "devel"),
	}
	if bi, ok := readBuild(); ok {
		info.GoVersion = bi.GoVersion
	}
	return info
}

func fromBuildInfo() string {
	bi, ok := readBuild()
	if !ok {
		return "dev"
	}
	if bi.Main.Path == ModulePath && usable(bi.Main.Version) {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && usable(dep.Replace.Version) {
			return dep.Replace.Version
		}
		if usable(dep.Version) {
			return dep.Version
		}
	}
	return "dev"
}

func usable(v string) bool {
	return v != "" && v != "(devel)"
}
