// ABOUTME: This file normalizes article URLs before fetching and storage
// ABOUTME: Strips tracking parameters, fragments, and trailing slashes

package utils

import (
	"net/url"
	"strings"
)

// trackingParams contains query parameters removed during normalization.
var trackingParams = map[string]bool{
	"utm_source":   true,
	"utm_medium":   true,
	"utm_campaign": true,
	"utm_term":     true,
	"utm_content":  true,
	"utm_id":       true,
	"fbclid":       true, // Facebook click ID
	"gclid":        true, // Google click ID
	"mc_eid":       true, // MailChimp email ID
	"msclkid":      true, // Microsoft click ID
}

// NormalizeURL normalizes a URL by removing tracking parameters, the
// fragment, and any trailing slash outside the root path. Two links to the
// same article then compare equal regardless of the referrer decoration.
func NormalizeURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	parsed.Fragment = ""

	query := parsed.Query()
	for param := range trackingParams {
		query.Del(param)
	}
	parsed.RawQuery = query.Encode()

	if parsed.Path != "/" && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimRight(parsed.Path, "/")
	}

	return parsed.String(), nil
}
