// Package render implements the constrained inline markup used in project
// body text: a (url) run renders as an image, a [url] run as an embedded
// video, and plain line breaks become paragraph breaks. It is a positional
// line scanner, deliberately isolated from any general markdown concerns.
package render

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentImage
	SegmentVideo
)

// Segment is one tagged run within a content line. Value is the raw text for
// SegmentText, the URL for SegmentImage and SegmentVideo.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// Line is one scanned content line. A blank line marks a paragraph break.
type Line struct {
	Blank    bool
	Segments []Segment
}

var (
	markerPattern  = regexp.MustCompile(`\(https?://[^)]+\)|\[https?://[^\]]+\]`)
	youtubePattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:embed/|v/|watch\?v=|watch\?.+&v=))([^&?]+)`)
	drivePattern   = regexp.MustCompile(`drive\.google\.com/(?:file/d/|open\?id=|uc\?id=)([a-zA-Z0-9_-]+)`)
	filePattern    = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)(\?.*)?$`)

	textPolicy = bluemonday.StrictPolicy()
)

// Scan splits content into lines and each line into tagged segments.
func Scan(content string) []Line {
	if content == "" {
		return nil
	}

	rawLines := strings.Split(content, "\n")
	lines := make([]Line, 0, len(rawLines))

	for _, raw := range rawLines {
		if strings.TrimSpace(raw) == "" {
			lines = append(lines, Line{Blank: true})
			continue
		}
		lines = append(lines, Line{Segments: scanLine(raw)})
	}

	return lines
}

func scanLine(line string) []Segment {
	var segments []Segment
	rest := line

	for {
		loc := markerPattern.FindStringIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			segments = append(segments, Segment{Kind: SegmentText, Value: rest[:loc[0]]})
		}

		marker := rest[loc[0]:loc[1]]
		url := marker[1 : len(marker)-1]
		if marker[0] == '(' {
			segments = append(segments, Segment{Kind: SegmentImage, Value: url})
		} else {
			segments = append(segments, Segment{Kind: SegmentVideo, Value: url})
		}

		rest = rest[loc[1]:]
	}

	if rest != "" {
		segments = append(segments, Segment{Kind: SegmentText, Value: rest})
	}

	return segments
}

// ResolveVideo maps a video URL to what should be embedded. When native is
// true the URL is a directly playable file; otherwise embedURL goes into an
// iframe (YouTube and Drive links are rewritten to their player URLs, other
// links pass through unchanged).
func ResolveVideo(url string) (embedURL string, native bool) {
	if m := youtubePattern.FindStringSubmatch(url); m != nil {
		return "https://www.youtube.com/embed/" + m[1], false
	}
	if m := drivePattern.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/file/d/" + m[1] + "/preview", false
	}
	if filePattern.MatchString(url) {
		return url, true
	}
	return url, false
}

// HTML renders scanned content to markup for the project detail page. Text
// runs are stripped of any embedded HTML before escaping.
func HTML(content string) template.HTML {
	var b strings.Builder

	for _, line := range Scan(content) {
		if line.Blank {
			b.WriteString(`<div class="spacer"></div>`)
			continue
		}

		b.WriteString(`<p>`)
		for _, seg := range line.Segments {
			switch seg.Kind {
			case SegmentImage:
				fmt.Fprintf(&b, `<img src="%s" alt="Content">`, template.HTMLEscapeString(seg.Value))
			case SegmentVideo:
				b.WriteString(videoHTML(seg.Value))
			default:
				b.WriteString(textPolicy.Sanitize(seg.Value))
			}
		}
		b.WriteString(`</p>`)
	}

	return template.HTML(b.String())
}

func videoHTML(url string) string {
	embedURL, native := ResolveVideo(url)
	escaped := template.HTMLEscapeString(embedURL)
	if native {
		return fmt.Sprintf(`<video controls class="content-video"><source src="%s"></video>`, escaped)
	}
	return fmt.Sprintf(`<div class="video-frame"><iframe src="%s" allowfullscreen></iframe></div>`, escaped)
}
