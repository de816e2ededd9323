// Package classify maps submitted clip URLs to a known video platform and the
// platform-specific content identifier. Classification is a pure, ordered
// pattern match over the URL structure; it performs no network access and
// never fails; an unrecognized URL is reported through the boolean result.
package classify

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform tags understood by the rest of the system. Settlement and metadata
// fetching branch on these exactly once, here.
const (
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

// Result identifies the platform a URL belongs to and the content id embedded
// in it.
type Result struct {
	Platform  string
	ContentID string
}

type pattern struct {
	platform string
	re       *regexp.Regexp
}

// Patterns are tried in order; the first structural match wins. Within a
// platform the canonical shape comes before short and embed shapes.
var patterns = []pattern{
	// TikTok: canonical video link, short links, embed.
	{PlatformTikTok, regexp.MustCompile(`^(?:www\.|m\.)?tiktok\.com$`)},
	{PlatformTikTok, regexp.MustCompile(`^(?:vm|vt)\.tiktok\.com$`)},
	// YouTube: watch, shorts, embed and youtu.be short links.
	{PlatformYouTube, regexp.MustCompile(`^(?:www\.|m\.)?youtube\.com$`)},
	{PlatformYouTube, regexp.MustCompile(`^youtu\.be$`)},
	// Instagram: reels and posts.
	{PlatformInstagram, regexp.MustCompile(`^(?:www\.)?instagram\.com$`)},
	// Twitter/X: status links.
	{PlatformTwitter, regexp.MustCompile(`^(?:www\.|mobile\.)?(?:twitter|x)\.com$`)},
}

var (
	tiktokVideoRe   = regexp.MustCompile(`^/@[^/]+/video/(\d+)`)
	tiktokEmbedRe   = regexp.MustCompile(`^/embed/(?:v2/)?(\d+)`)
	tiktokShortRe   = regexp.MustCompile(`^/([A-Za-z0-9]+)/?$`)
	youtubeShortsRe = regexp.MustCompile(`^/(?:shorts|embed|live)/([A-Za-z0-9_-]{6,})`)
	youtubeBeRe     = regexp.MustCompile(`^/([A-Za-z0-9_-]{6,})$`)
	instagramRe     = regexp.MustCompile(`^/(?:reel|reels|p|tv)/([A-Za-z0-9_-]+)`)
	twitterRe       = regexp.MustCompile(`^/[A-Za-z0-9_]+/status(?:es)?/(\d+)`)
)

// Classify parses rawURL and returns the platform tag plus content id, or
// ok=false when the URL matches no known platform shape. Callers must treat
// ok=false as an intake validation error, not a metadata error.
func Classify(rawURL string) (Result, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Result{}, false
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Result{}, false
	}
	host := strings.ToLower(u.Hostname())

	for _, p := range patterns {
		if !p.re.MatchString(host) {
			continue
		}
		if id, ok := extract(p.platform, host, u); ok {
			return Result{Platform: p.platform, ContentID: id}, true
		}
	}
	return Result{}, false
}

func extract(platform, host string, u *url.URL) (string, bool) {
	path := u.EscapedPath()
	switch platform {
	case PlatformTikTok:
		if m := tiktokVideoRe.FindStringSubmatch(path); m != nil {
			return m[1], true
		}
		if m := tiktokEmbedRe.FindStringSubmatch(path); m != nil {
			return m[1], true
		}
		// Short-link hosts carry an opaque share code as the whole path.
		if host == "vm.tiktok.com" || host == "vt.tiktok.com" {
			if m := tiktokShortRe.FindStringSubmatch(path); m != nil {
				return m[1], true
			}
		}
	case PlatformYouTube:
		if host == "youtu.be" {
			if m := youtubeBeRe.FindStringSubmatch(path); m != nil {
				return m[1], true
			}
			return "", false
		}
		if path == "/watch" {
			if v := u.Query().Get("v"); v != "" {
				return v, true
			}
			return "", false
		}
		if m := youtubeShortsRe.FindStringSubmatch(path); m != nil {
			return m[1], true
		}
	case PlatformInstagram:
		if m := instagramRe.FindStringSubmatch(path); m != nil {
			return m[1], true
		}
	case PlatformTwitter:
		if m := twitterRe.FindStringSubmatch(path); m != nil {
			return m[1], true
		}
	}
	return "", false
}
