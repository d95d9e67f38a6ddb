package diffx

import (
	"regexp"
	"strings"
)

// DefaultIgnorePatterns covers common binary formats that are not worth
// diffing line by line.
var DefaultIgnorePatterns = []string{
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.pdf",
	"*.zip", "*.gz", "*.tar", "*.7z",
	"*.docx", "*.xlsx", "*.pptx",
}

// IgnoreSet holds compiled exclusion patterns for one comparison run.
// Patterns use shell-glob syntax (*, ?, [...]) matched against the full
// relative path; * and ? cross directory separators.
type IgnoreSet struct {
	patterns []*regexp.Regexp
}

// NewIgnoreSet compiles glob patterns into an IgnoreSet
func NewIgnoreSet(patterns ...string) (*IgnoreSet, error) {
	set := &IgnoreSet{
		patterns: make([]*regexp.Regexp, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(translatePattern(pattern))
		if err != nil {
			return nil, ErrInvalidPattern.
				SetError(err).
				SetData(patternErrorContext{
					Pattern: pattern,
					Error:   err,
				})
		}
		set.patterns = append(set.patterns, re)
	}

	return set, nil
}

// Match reports whether the relative path matches any pattern
func (s *IgnoreSet) Match(rel string) bool {
	if s == nil {
		return false
	}

	for _, re := range s.patterns {
		if re.MatchString(rel) {
			return true
		}
	}

	return false
}

// IsIgnored reports whether the relative path matches any of the glob
// patterns. Patterns that fail to compile are skipped.
func IsIgnored(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		re, err := regexp.Compile(translatePattern(pattern))
		if err != nil {
			continue
		}
		if re.MatchString(rel) {
			return true
		}
	}

	return false
}

// translatePattern converts a glob pattern into an anchored regular
// expression. An unterminated character class is treated as a literal
// bracket.
func translatePattern(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")

	for i := 0; i < len(pattern); {
		c := pattern[i]
		i++

		switch c {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '[':
			j := i
			if j < len(pattern) && pattern[j] == '!' {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}

			if j >= len(pattern) {
				sb.WriteString(`\[`)
				continue
			}

			set := strings.ReplaceAll(pattern[i:j], `\`, `\\`)
			sb.WriteByte('[')
			if strings.HasPrefix(set, "!") {
				sb.WriteByte('^')
				set = set[1:]
			}
			sb.WriteString(set)
			sb.WriteByte(']')
			i = j + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString("$")
	return sb.String()
}
