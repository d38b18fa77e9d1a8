package version

import "strings"

// Version is set at build time with:
// -ldflags "-X github.com/tailora-app/tailora/internal/version.Version=vX.Y.Z"
var Version = "dev"

func Current() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// UserAgent identifies this build in outbound HTTP requests (GUI client).
func UserAgent() string {
	return "tailora/" + Current()
}
