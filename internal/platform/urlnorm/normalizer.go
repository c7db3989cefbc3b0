// Package urlnorm reduces URLs to a canonical form and a structural template.
package urlnorm

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"sort"
	"strings"
)

// Dynamic segment patterns, checked in order
var segmentPatterns = []struct {
	re          *regexp.Regexp
	placeholder string
	minLen      int
}{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "{date}", 0},
	{regexp.MustCompile(`^\d{10,13}$`), "{timestamp}", 0},
	{regexp.MustCompile(`^\d+$`), "{id}", 0},
	{regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`), "{uuid}", 0},
	{regexp.MustCompile(`^[a-f0-9]{32,64}$`), "{hash}", 0},
	{regexp.MustCompile(`^[a-z0-9]+-[a-z0-9-]+$`), "{slug}", 11},
}

// Tracking/analytics parameters dropped from the canonical form
var trackingParams = map[string]bool{
	// Google Analytics
	"utm_source": true, "utm_medium": true, "utm_campaign": true,
	"utm_term": true, "utm_content": true, "gclid": true,
	"gclsrc": true, "_ga": true, "_gid": true,

	// Facebook
	"fbclid": true, "fb_action_ids": true, "fb_action_types": true,
	"fb_source": true, "fb_ref": true,

	// Session/tracking
	"sessionid": true, "session_id": true, "sid": true,
	"phpsessid": true, "jsessionid": true, "aspsessionid": true,

	// Misc tracking
	"mc_cid": true, "mc_eid": true, "yclid": true, "msclkid": true,
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// Result contains the normalized forms of a URL.
type Result struct {
	Original  string
	Canonical string // lowercase scheme/host, no default port, clean path, sorted query, no fragment
	Template  string // Canonical with dynamic path segments replaced by placeholders

	ParamsRemoved   []string          // tracking params dropped, sorted
	DynamicSegments map[string]string // segment -> placeholder
}

// Normalize parses rawURL and builds its canonical form and template.
func Normalize(rawURL string) (*Result, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("not an absolute URL: %q", rawURL)
	}

	result := &Result{
		Original:        rawURL,
		DynamicSegments: make(map[string]string),
	}

	applyBasic(parsed, result)
	result.Canonical = parsed.String()

	result.Template = template(parsed, result)

	return result, nil
}

// applyBasic lowercases, drops the default port, cleans the path, strips
// tracking params and fragment, and sorts the query.
func applyBasic(parsed *url.URL, result *Result) {
	parsed.Scheme = strings.ToLower(parsed.Scheme)

	host, port := strings.ToLower(parsed.Hostname()), parsed.Port()
	if port == defaultPorts[parsed.Scheme] {
		port = ""
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		host += ":" + port
	}
	parsed.Host = host

	parsed.Fragment = ""
	parsed.RawFragment = ""

	if parsed.Path != "" {
		parsed.Path = path.Clean(parsed.Path)
		parsed.RawPath = ""
	}

	if parsed.RawQuery != "" {
		query := parsed.Query()
		for key := range query {
			if trackingParams[strings.ToLower(key)] {
				result.ParamsRemoved = append(result.ParamsRemoved, key)
				delete(query, key)
			}
		}
		sort.Strings(result.ParamsRemoved)
		// Encode sorts by key
		parsed.RawQuery = query.Encode()
	}
}

// template rebuilds the canonical URL with dynamic path segments replaced
// by placeholders. It is written by hand: url.URL.String would escape them.
func template(parsed *url.URL, result *Result) string {
	segments := strings.Split(parsed.EscapedPath(), "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		unescaped, err := url.PathUnescape(segment)
		if err != nil {
			continue
		}
		if placeholder := dynamicSegment(unescaped); placeholder != "" {
			result.DynamicSegments[unescaped] = placeholder
			segments[i] = placeholder
		}
	}

	var b strings.Builder
	b.WriteString(parsed.Scheme + "://")
	if parsed.User != nil {
		b.WriteString(parsed.User.String() + "@")
	}
	b.WriteString(parsed.Host)
	b.WriteString(strings.Join(segments, "/"))
	if parsed.RawQuery != "" {
		b.WriteString("?" + parsed.RawQuery)
	}
	return b.String()
}

// dynamicSegment returns the placeholder for segment, or "".
func dynamicSegment(segment string) string {
	lower := strings.ToLower(segment)
	for _, p := range segmentPatterns {
		if len(segment) >= p.minLen && p.re.MatchString(lower) {
			return p.placeholder
		}
	}
	return ""
}
