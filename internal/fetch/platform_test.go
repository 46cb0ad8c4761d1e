package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_Greenhouse(t *testing.T) {
	assert.Equal(t, PlatformGreenhouse, DetectPlatform("https://boards.greenhouse.io/acme/jobs/123"))
}

func TestDetectPlatform_Lever(t *testing.T) {
	assert.Equal(t, PlatformLever, DetectPlatform("https://jobs.lever.co/acme/abc-def"))
}

func TestDetectPlatform_Unknown(t *testing.T) {
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://careers.example.com/jobs/1"))
}

func TestDetectPlatform_InvalidURL(t *testing.T) {
	assert.Equal(t, PlatformUnknown, DetectPlatform("://not-a-url"))
}

func TestLooksLikeEmptyShell(t *testing.T) {
	assert.True(t, looksLikeEmptyShell("<html><body></body></html>"))
	assert.False(t, looksLikeEmptyShell("<html>"+strings.Repeat("job content ", 60)+"</html>"))
}
