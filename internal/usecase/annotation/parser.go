package annotation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

var (
	srtTimecodeRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3}\s+-->\s+\d{2}:\d{2}:\d{2},\d{3}`)
	vttTimecodeRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3}\s+-->\s+\d{2}:\d{2}:\d{2}\.\d{3}`)
	// cue timings with settings or other text between them
	vttCueFragmentRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3}.*-->.*\d{2}:\d{2}:\d{2}\.\d{3}`)

	bracketRe      = regexp.MustCompile(`\[[^\]]+\]`)
	parenRe        = regexp.MustCompile(`\([^\)]+\)`)
	tagRe          = regexp.MustCompile(`<[^>]+>`)
	blankRunRe     = regexp.MustCompile(`[ \t]+`)
	newlineSpaceRe = regexp.MustCompile(`\s*\n\s*`)
	newlineRunRe   = regexp.MustCompile(`\n{2,}`)
)

const detectHeadLines = 3

// DetectFormat guesses whether raw is WebVTT, SRT or plain text by
// looking at its first non-empty lines.
func DetectFormat(raw string) entities.TranscriptFormat {
	head := make([]string, 0, detectHeadLines)
	for _, line := range splitLines(raw) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		head = append(head, s)
		if len(head) == detectHeadLines {
			break
		}
	}
	if len(head) == 0 {
		return entities.FormatPlain
	}

	for _, line := range head {
		if strings.EqualFold(line, "WEBVTT") {
			return entities.FormatVTT
		}
	}

	joined := strings.Join(head, "\n")
	if vttTimecodeRe.MatchString(joined) {
		return entities.FormatVTT
	}
	if srtTimecodeRe.MatchString(joined) {
		return entities.FormatSRT
	}
	return entities.FormatPlain
}

// Normalize detects the format of raw and strips its markup
func Normalize(raw string) string {
	return NormalizeAs(raw, DetectFormat(raw))
}

// NormalizeAs strips markup for a known format and applies CleanCommon
func NormalizeAs(raw string, format entities.TranscriptFormat) string {
	switch format {
	case entities.FormatVTT:
		return CleanCommon(parseVTT(raw))
	case entities.FormatSRT:
		return CleanCommon(parseSRT(raw))
	default:
		return CleanCommon(raw)
	}
}

func parseVTT(raw string) string {
	kept := make([]string, 0)
	for _, line := range splitLines(raw) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if strings.ToUpper(s) == "WEBVTT" || strings.HasPrefix(s, "NOTE") {
			continue
		}
		if vttTimecodeRe.MatchString(s) {
			continue
		}
		s = vttCueFragmentRe.ReplaceAllString(s, " ")
		if isDigitOnly(s) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "\n")
}

func parseSRT(raw string) string {
	kept := make([]string, 0)
	for _, line := range splitLines(raw) {
		s := strings.TrimSpace(line)
		if s == "" || isDigitOnly(s) {
			continue
		}
		if srtTimecodeRe.MatchString(s) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "\n")
}

// CleanCommon removes bracketed noise, parentheticals and inline tags and
// collapses whitespace. It is idempotent.
func CleanCommon(text string) string {
	text = bracketRe.ReplaceAllString(text, " ")
	text = parenRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, " ")
	text = newlineSpaceRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// splitLines breaks text on \n, \r\n and lone \r
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func isDigitOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
