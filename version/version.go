package version

import (
	"fmt"
	"strings"
	"sync"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const appName = "gfxd"

const (
	appMajor uint = 1
	appMinor uint = 12
	appPatch uint = 0
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/graphicscoin/gfxd/version.appBuild=foo"' if needed.
// It MUST only contain characters from validCharacters.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the application version as a semantic version string,
// with the build metadata appended after a dash when it is valid.
func Version() string {
	versionOnce.Do(func() {
		version = fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
		if build := checkAppBuild(appBuild); build != "" {
			version = fmt.Sprintf("%s-%s", version, build)
		}
	})
	return version
}

// UserAgent returns the name and version in the "/name:version/" form nodes
// announce to their peers. The network name is appended as a comment when
// it is not empty.
func UserAgent(network string) string {
	if network == "" {
		return fmt.Sprintf("/%s:%s/", appName, Version())
	}
	return fmt.Sprintf("/%s:%s(%s)/", appName, Version(), network)
}

// checkAppBuild returns str, or an empty string if it contains a character
// not in validCharacters.
func checkAppBuild(str string) string {
	for _, r := range str {
		if !strings.ContainsRune(validCharacters, r) {
			return ""
		}
	}
	return str
}
