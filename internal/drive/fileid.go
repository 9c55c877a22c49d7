package drive

import (
	"regexp"
	"strings"
)

// File ID extraction patterns for the URL shapes Drive hands out:
// editor links (/d/<id>), folder links (/folders/<id>) and the legacy
// open?id= form.
var fileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
}

// ExtractFileID accepts a Drive/Docs/Sheets/Slides URL, a folder URL, or a
// bare file ID and returns the file ID. Input that matches no URL pattern is
// assumed to already be an ID and returned trimmed.
func ExtractFileID(input string) string {
	s := strings.TrimSpace(input)
	for _, re := range fileIDPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return s
}
