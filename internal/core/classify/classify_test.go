package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRecognized(t *testing.T) {
	cases := []struct {
		url      string
		platform string
		id       string
	}{
		{"https://www.tiktok.com/@creator/video/7301234567890123456", PlatformTikTok, "7301234567890123456"},
		{"https://m.tiktok.com/@a.b_c/video/123456", PlatformTikTok, "123456"},
		{"https://vm.tiktok.com/ZM8abc123/", PlatformTikTok, "ZM8abc123"},
		{"https://vt.tiktok.com/ZSxyz987", PlatformTikTok, "ZSxyz987"},
		{"https://www.tiktok.com/embed/v2/7301234567890123456", PlatformTikTok, "7301234567890123456"},

		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube, "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", PlatformYouTube, "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/AbCdEf12345", PlatformYouTube, "AbCdEf12345"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", PlatformYouTube, "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYouTube, "dQw4w9WgXcQ"},

		{"https://www.instagram.com/reel/Cx1YzAbcDef/", PlatformInstagram, "Cx1YzAbcDef"},
		{"https://instagram.com/p/Cx1YzAbcDef/?igshid=1", PlatformInstagram, "Cx1YzAbcDef"},
		{"https://www.instagram.com/tv/Cx1YzAbcDef", PlatformInstagram, "Cx1YzAbcDef"},

		{"https://twitter.com/user/status/1712345678901234567", PlatformTwitter, "1712345678901234567"},
		{"https://x.com/user/status/1712345678901234567", PlatformTwitter, "1712345678901234567"},
		{"https://mobile.twitter.com/user/statuses/42", PlatformTwitter, "42"},

		// Scheme-less input is tolerated.
		{"www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube, "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		res, ok := Classify(tc.url)
		assert.True(t, ok, "expected %s to classify", tc.url)
		assert.Equal(t, tc.platform, res.Platform, tc.url)
		assert.Equal(t, tc.id, res.ContentID, tc.url)
	}
}

func TestClassifyNotRecognized(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not a url at all",
		"https://example.com/video/1",
		"https://vimeo.com/123456",
		"https://www.youtube.com/watch",           // missing v param
		"https://www.youtube.com/",                // no content path
		"https://www.tiktok.com/@creator",         // profile, not a video
		"https://twitter.com/user",                // profile
		"https://www.instagram.com/someuser/",     // profile
		"http://[::1]:namedport",                  // unparsable
		"https://nottiktok.com/@creator/video/12", // host suffix mismatch
	}
	for _, raw := range cases {
		res, ok := Classify(raw)
		assert.False(t, ok, "expected %q to be unrecognized, got %+v", raw, res)
	}
}

// Classification must be total: arbitrary garbage never panics.
func TestClassifyTotality(t *testing.T) {
	inputs := []string{
		strings.Repeat("a", 1<<16),
		"https://" + strings.Repeat("tiktok.com/", 100),
		"%%%://///",
		"\x00\x01\x02",
		"https://vm.tiktok.com/" + strings.Repeat("Z", 4096),
	}
	for _, raw := range inputs {
		assert.NotPanics(t, func() { Classify(raw) })
	}
}
