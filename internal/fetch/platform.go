package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform. The ingestion layer picks
// its HTML parser based on this.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "greenhouse.io") {
		return PlatformGreenhouse
	}
	if strings.Contains(host, "lever.co") {
		return PlatformLever
	}

	return PlatformUnknown
}
