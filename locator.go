package pagesift

import (
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/publicsuffix"
)

// Key identifies one extraction in the cache: a truncated hash of the
// normalized locator plus the source domain.
type Key struct {
	URLHash string `json:"urlHash"`
	Domain  string `json:"domain"`
}

// String renders the key in its composite storage form.
func (k Key) String() string {
	return k.URLHash + ":" + k.Domain
}

// NormalizeLocator canonicalizes a page URL for use as a cache key. The
// scheme and host are lowercased, default ports and URL fragments are
// stripped, and a trailing slash on a non-root path is removed.
func NormalizeLocator(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(EINVALID, "invalid locator %q: %v", raw, err)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported locator scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "locator %q has no host", raw)
	}
	if (u.Scheme == "http" && u.Port() == "80") || (u.Scheme == "https" && u.Port() == "443") {
		u.Host = u.Hostname()
	}
	u.Fragment = ""
	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String(), nil
}

// LocatorDomain returns the registrable domain (eTLD+1) of a locator,
// falling back to the bare host when the public suffix list has no answer
// (IP addresses, localhost).
func LocatorDomain(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Host == "" {
		return ""
	}
	host := u.Hostname()
	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return host
}

// LocatorKey derives the cache key for a locator. The hash half is a
// truncated hex xxhash of the normalized locator, so repeat requests for
// equivalent URLs land on the same entry.
func LocatorKey(locator string) (Key, error) {
	norm, err := NormalizeLocator(locator)
	if err != nil {
		return Key{}, err
	}
	return Key{URLHash: hashLocator(norm), Domain: LocatorDomain(norm)}, nil
}

// hashLocator computes the xxHash of a normalized locator as a hex string.
func hashLocator(norm string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(norm))
	return hex.EncodeToString(b[:])
}
