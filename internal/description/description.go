// Package description holds the free-text helpers used by the item page:
// cursor insertion and the link / subtask extraction the page shows next to
// the description.
package description

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	linkPattern    = regexp.MustCompile(`(?i)(?:(?:https?|ftp)://|www\.)[^\s<>()\[\]"']+`)
	imagePattern   = regexp.MustCompile(`(?i)\.(?:jpe?g|png|gif)$`)
	subtaskPattern = regexp.MustCompile(`subtask #(\d+)`)
)

// linkTrailers are dropped from the end of a link, they usually belong to
// the surrounding sentence.
const linkTrailers = ".,;:!?"

// InsertAt inserts text at a rune offset. The offset is clamped to the
// description bounds.
func InsertAt(description string, cursor int, text string) string {
	if cursor <= 0 {
		return text + description
	}
	if cursor >= utf8.RuneCountInString(description) {
		return description + text
	}

	offset := 0
	for i := range description {
		if offset == cursor {
			return description[:i] + text + description[i:]
		}
		offset++
	}
	return description + text
}

// Links returns the URLs mentioned in the description, in order.
func Links(description string) []string {
	links := make([]string, 0)
	for _, match := range linkPattern.FindAllString(description, -1) {
		link := strings.TrimRight(match, linkTrailers)
		if link == "" || strings.EqualFold(link, "www.") {
			continue
		}
		links = append(links, link)
	}
	return links
}

// Images keeps the links that point to an image file.
func Images(links []string) []string {
	images := make([]string, 0)
	for _, link := range links {
		if IsImage(link) {
			images = append(images, link)
		}
	}
	return images
}

// IsImage reports whether a link ends in a known image extension.
func IsImage(link string) bool {
	return imagePattern.MatchString(link)
}

// SubtaskRefs returns the item ids referenced as "subtask #<id>", each once,
// in first-seen order.
func SubtaskRefs(description string) []int {
	seen := make(map[int]struct{})
	refs := make([]int, 0)
	for _, m := range subtaskPattern.FindAllStringSubmatch(description, -1) {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, id)
	}
	return refs
}
