package audit

import (
	"regexp"
	"strings"
)

// Social checks only count genuine profile/channel links. Share buttons,
// intent URLs, plugin embeds and bare platform homepages do not qualify.

var (
	facebookPathRe = regexp.MustCompile(`facebook\.com/([a-zA-Z0-9._-]+)`)
	instagramRe    = regexp.MustCompile(`instagram\.com/([a-zA-Z0-9._-]+)`)
	twitterRe      = regexp.MustCompile(`(?:twitter|x)\.com/([a-zA-Z0-9_]+)`)
)

var facebookReserved = map[string]bool{
	"sharer": true, "share": true, "dialog": true, "plugins": true, "sharer.php": true,
}

var instagramReserved = map[string]bool{
	"p": true, "explore": true, "accounts": true, "about": true,
}

var twitterReserved = map[string]bool{
	"intent": true, "share": true, "home": true, "search": true,
}

func bareRoot(href, host string) bool {
	for _, scheme := range []string{"https://", "http://"} {
		if href == scheme+host+"/" || href == scheme+"www."+host+"/" {
			return true
		}
	}
	return false
}

// detectSocialLinks scans lowercased hrefs and returns the first qualifying
// profile URL per platform.
func detectSocialLinks(hrefs []string) map[string]string {
	found := make(map[string]string)
	for _, raw := range hrefs {
		href := strings.ToLower(raw)

		if _, ok := found[CheckFacebook]; !ok && isFacebookProfile(href) {
			found[CheckFacebook] = href
		}
		if _, ok := found[CheckInstagram]; !ok && isInstagramProfile(href) {
			found[CheckInstagram] = href
		}
		if _, ok := found[CheckLinkedIn]; !ok && isLinkedInProfile(href) {
			found[CheckLinkedIn] = href
		}
		if _, ok := found[CheckYouTube]; !ok && isYouTubeChannel(href) {
			found[CheckYouTube] = href
		}
		if _, ok := found[CheckTwitter]; !ok && isTwitterProfile(href) {
			found[CheckTwitter] = href
		}
	}
	return found
}

func isFacebookProfile(href string) bool {
	if !strings.Contains(href, "facebook.com/") || bareRoot(href, "facebook.com") {
		return false
	}
	for _, seg := range []string{"facebook.com/sharer", "facebook.com/share", "facebook.com/dialog", "facebook.com/plugins"} {
		if strings.Contains(href, seg) {
			return false
		}
	}
	m := facebookPathRe.FindStringSubmatch(href)
	return m != nil && m[1] != "" && !facebookReserved[m[1]]
}

func isInstagramProfile(href string) bool {
	if !strings.Contains(href, "instagram.com/") || bareRoot(href, "instagram.com") {
		return false
	}
	m := instagramRe.FindStringSubmatch(href)
	return m != nil && m[1] != "" && !instagramReserved[m[1]]
}

func isLinkedInProfile(href string) bool {
	if !strings.Contains(href, "linkedin.com/") || bareRoot(href, "linkedin.com") {
		return false
	}
	return strings.Contains(href, "/company/") || strings.Contains(href, "/in/")
}

func isYouTubeChannel(href string) bool {
	if !strings.Contains(href, "youtube.com/") || bareRoot(href, "youtube.com") {
		return false
	}
	if strings.Contains(href, "/watch") {
		return false
	}
	return strings.Contains(href, "/channel/") || strings.Contains(href, "/c/") ||
		strings.Contains(href, "/user/") || strings.Contains(href, "/@")
}

func isTwitterProfile(href string) bool {
	if !strings.Contains(href, "twitter.com/") && !strings.Contains(href, "x.com/") {
		return false
	}
	if bareRoot(href, "twitter.com") || bareRoot(href, "x.com") {
		return false
	}
	if strings.Contains(href, "/intent/") || strings.Contains(href, "/share") {
		return false
	}
	m := twitterRe.FindStringSubmatch(href)
	return m != nil && m[1] != "" && !twitterReserved[m[1]]
}
