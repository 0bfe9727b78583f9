// ABOUTME: This file provides HTML sanitization for stored article content
// ABOUTME: Wraps a configured bluemonday policy shared by the content pipeline

package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer provides HTML sanitization functionality.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with a UGC-based policy. Standard content
// tags pass through while scripts, iframes, and event handlers are stripped.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{policy: policy}
}

// SanitizeHTML sanitizes the given HTML content string.
func (s *Sanitizer) SanitizeHTML(content string) string {
	if content == "" {
		return ""
	}
	return s.policy.Sanitize(content)
}

// SanitizeAndTrim sanitizes HTML and trims surrounding whitespace.
func (s *Sanitizer) SanitizeAndTrim(content string) string {
	return strings.TrimSpace(s.SanitizeHTML(content))
}
