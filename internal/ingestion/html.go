package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// postingSelectors are tried in order when locating the main content of
// a saved job-posting page.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

var htmlWhitespace = regexp.MustCompile(`\s+`)

// ExtractPostingText parses saved job-posting HTML and returns its main
// body text, with navigation and script noise removed. Used to derive
// job profile skill suggestions from a posting downloaded by the
// operator; the screener itself never fetches anything.
func ExtractPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner").Remove()

	var mainContent *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	text := strings.TrimSpace(htmlWhitespace.ReplaceAllString(mainContent.Text(), " "))
	if countNonWhitespace(text) < minViableChars {
		return "", fmt.Errorf("%w from posting HTML", ErrTooShort)
	}

	return text, nil
}
