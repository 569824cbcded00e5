package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSocialLinks_AcceptsProfiles(t *testing.T) {
	hrefs := []string{
		"https://facebook.com/AcmeCorp",
		"https://www.instagram.com/acmecorp",
		"https://linkedin.com/company/acme-corp",
		"https://youtube.com/channel/UC12345",
		"https://twitter.com/acmecorp",
	}

	found := detectSocialLinks(hrefs)
	assert.Len(t, found, 5)
	assert.Equal(t, "https://facebook.com/acmecorp", found[CheckFacebook])
	assert.Equal(t, "https://www.instagram.com/acmecorp", found[CheckInstagram])
	assert.Equal(t, "https://linkedin.com/company/acme-corp", found[CheckLinkedIn])
	assert.Equal(t, "https://youtube.com/channel/UC12345", found[CheckYouTube])
	assert.Equal(t, "https://twitter.com/acmecorp", found[CheckTwitter])
}

func TestDetectSocialLinks_RejectsShareLinks(t *testing.T) {
	hrefs := []string{
		"https://facebook.com/sharer/sharer.php?u=https://acme.com",
		"https://www.facebook.com/share.php?u=https://acme.com",
		"https://facebook.com/dialog/feed",
		"https://facebook.com/plugins/like.php",
		"https://twitter.com/intent/tweet?text=hi",
		"https://twitter.com/share?url=https://acme.com",
	}

	found := detectSocialLinks(hrefs)
	assert.Empty(t, found)
}

func TestDetectSocialLinks_RejectsBareRoots(t *testing.T) {
	hrefs := []string{
		"https://facebook.com/",
		"https://www.facebook.com/",
		"https://instagram.com/",
		"https://linkedin.com/",
		"https://youtube.com/",
		"https://twitter.com/",
		"https://x.com/",
	}

	found := detectSocialLinks(hrefs)
	assert.Empty(t, found)
}

func TestDetectSocialLinks_RejectsReservedPaths(t *testing.T) {
	hrefs := []string{
		"https://instagram.com/p/Cxyz123",
		"https://instagram.com/explore/tags/plumbing",
		"https://instagram.com/accounts/login",
		"https://twitter.com/home",
		"https://twitter.com/search?q=acme",
	}

	found := detectSocialLinks(hrefs)
	assert.Empty(t, found)
}

func TestDetectSocialLinks_LinkedInRequiresProfilePath(t *testing.T) {
	found := detectSocialLinks([]string{"https://linkedin.com/feed/update/123"})
	assert.Empty(t, found)

	found = detectSocialLinks([]string{"https://linkedin.com/in/jane-doe"})
	assert.Contains(t, found, CheckLinkedIn)
}

func TestDetectSocialLinks_YouTubeRequiresChannelPath(t *testing.T) {
	found := detectSocialLinks([]string{"https://youtube.com/watch?v=abc123"})
	assert.Empty(t, found)

	for _, href := range []string{
		"https://youtube.com/channel/UC123",
		"https://youtube.com/c/acmecorp",
		"https://youtube.com/user/acmecorp",
		"https://youtube.com/@acmecorp",
	} {
		found = detectSocialLinks([]string{href})
		assert.Contains(t, found, CheckYouTube, "href %s", href)
	}
}

func TestDetectSocialLinks_XDomainCounts(t *testing.T) {
	found := detectSocialLinks([]string{"https://x.com/acmecorp"})
	assert.Contains(t, found, CheckTwitter)
}

func TestDetectSocialLinks_FirstProfilePerPlatformWins(t *testing.T) {
	found := detectSocialLinks([]string{
		"https://facebook.com/first",
		"https://facebook.com/second",
	})
	assert.Equal(t, "https://facebook.com/first", found[CheckFacebook])
}
