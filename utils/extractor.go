// ABOUTME: This file extracts readable article content from raw HTML
// ABOUTME: Uses readability with goquery pre-cleaning and a tag-strip fallback

package utils

import (
	"errors"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// ErrNoContent is returned when no readable text could be extracted.
var ErrNoContent = errors.New("no readable content extracted")

// Readability sometimes returns only the title or metadata. Anything shorter
// than this is treated as a failed extraction and falls through to the
// paragraph scraper.
const minReadableLength = 200

// ExtractReadableText converts raw article HTML into plain text paragraphs.
// Non-content elements (scripts, navigation, social widgets) are removed
// before readability runs so boilerplate does not leak into the result.
func ExtractReadableText(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrNoContent
	}

	// Short-circuit if the payload is already plain text.
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed), nil
	}

	if cleaned := preCleanHTML(trimmed); cleaned != "" {
		trimmed = cleaned
	}

	article, err := readability.FromReader(strings.NewReader(trimmed), nil)
	if err == nil {
		var textBuf strings.Builder
		if err := article.RenderText(&textBuf); err == nil {
			text := strings.TrimSpace(textBuf.String())
			if len(text) >= minReadableLength {
				var htmlBuf strings.Builder
				if err := article.RenderHTML(&htmlBuf); err == nil {
					if html := strings.TrimSpace(htmlBuf.String()); html != "" {
						if paragraphs := extractParagraphs(html); paragraphs != "" {
							return paragraphs, nil
						}
					}
				}
				return normalizeWhitespace(text), nil
			}
		}
	}

	if text := extractParagraphs(trimmed); text != "" {
		return text, nil
	}

	return "", ErrNoContent
}

// preCleanHTML strips elements readability tends to misclassify as content.
func preCleanHTML(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	doc.Find("head, script, style, noscript, title, aside, nav, header, footer").Remove()
	doc.Find("iframe, embed, object, video, audio, canvas").Remove()
	doc.Find("[class*='social'], [class*='share'], [class*='comment'], [id*='comment']").Remove()
	doc.Find("meta, link[rel='stylesheet'], link[rel='preload'], link[rel='prefetch']").Remove()

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		s.RemoveAttr("style")
		s.RemoveAttr("onclick")
		s.RemoveAttr("onload")
		s.RemoveAttr("onerror")
	})

	cleaned, err := doc.Html()
	if err != nil {
		return ""
	}
	return cleaned
}

// extractParagraphs extracts text from HTML preserving paragraph structure.
// Paragraphs are separated by double newlines.
func extractParagraphs(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalizeWhitespace(StripTags(html))
	}

	var paragraphs []string
	appendText := func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(appendText)
	doc.Find("p").Each(appendText)
	doc.Find("pre code, pre").Each(appendText)
	doc.Find("li").Each(appendText)

	if len(paragraphs) == 0 {
		doc.Find("div, article, section").Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 10 {
				paragraphs = append(paragraphs, text)
			}
		})
	}

	if len(paragraphs) == 0 {
		return normalizeWhitespace(StripTags(html))
	}

	return strings.Join(paragraphs, "\n\n")
}

// StripTags removes all HTML tags and returns plain text.
func StripTags(raw string) string {
	return normalizeWhitespace(bluemonday.StrictPolicy().Sanitize(raw))
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
