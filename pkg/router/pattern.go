package router

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// CatchAll is the parameter key used to fill a trailing "*" segment.
const CatchAll = "*"

type segmentKind int

const (
	segmentStatic segmentKind = iota
	segmentParam
	segmentCatchAll
)

// segment is either literal text or a placeholder. A single path element can
// hold several segments, e.g. "/files/{name}.{ext}".
type segment struct {
	kind    segmentKind
	text    string
	name    string
	pattern *regexp.Regexp
}

func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q must begin with '/'", ErrInvalidPattern, pattern)
	}

	var (
		segments []segment
		seen     = make(map[string]struct{})
		rest     = pattern
	)

	for len(rest) > 0 {
		open := strings.IndexAny(rest, "{*")
		if open < 0 {
			segments = append(segments, segment{kind: segmentStatic, text: rest})
			break
		}
		if open > 0 {
			segments = append(segments, segment{kind: segmentStatic, text: rest[:open]})
			rest = rest[open:]
		}

		if rest[0] == '*' {
			if len(rest) != 1 {
				return nil, fmt.Errorf("%w: %q catch-all must be the last segment", ErrInvalidPattern, pattern)
			}
			segments = append(segments, segment{kind: segmentCatchAll, name: CatchAll})
			break
		}

		end := closingBrace(rest)
		if end < 0 {
			return nil, fmt.Errorf("%w: %q has an unclosed '{'", ErrInvalidPattern, pattern)
		}
		seg, err := parseParam(rest[1:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
		}
		if _, dup := seen[seg.name]; dup {
			return nil, fmt.Errorf("%w: %q declares {%s} twice", ErrInvalidPattern, pattern, seg.name)
		}
		seen[seg.name] = struct{}{}
		segments = append(segments, seg)
		rest = rest[end+1:]
	}

	return segments, nil
}

// closingBrace finds the brace closing the placeholder that starts at s[0],
// allowing balanced braces inside a regexp such as {id:[0-9]{4}}.
func closingBrace(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseParam(body string) (segment, error) {
	name, expr, hasExpr := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return segment{}, fmt.Errorf("empty parameter name")
	}
	if strings.ContainsAny(name, "/{}") {
		return segment{}, fmt.Errorf("invalid parameter name %q", name)
	}

	seg := segment{kind: segmentParam, name: name}
	if hasExpr {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			return segment{}, fmt.Errorf("empty regexp for {%s}", name)
		}
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return segment{}, fmt.Errorf("compile regexp for {%s}: %w", name, err)
		}
		seg.pattern = re
	}
	return seg, nil
}

func buildPath(routeName string, segments []segment, params map[string]string) (string, error) {
	used := 0
	var b strings.Builder

	for _, seg := range segments {
		switch seg.kind {
		case segmentStatic:
			b.WriteString(seg.text)
		case segmentParam:
			value, ok := params[seg.name]
			if !ok || value == "" {
				return "", &ParamError{Route: routeName, Param: seg.name, Err: ErrMissingParam}
			}
			if seg.pattern != nil && !seg.pattern.MatchString(value) {
				return "", &ParamError{Route: routeName, Param: seg.name, Value: value, Err: ErrParamMismatch}
			}
			used++
			b.WriteString(url.PathEscape(value))
		case segmentCatchAll:
			value, ok := params[CatchAll]
			if ok {
				used++
				b.WriteString(escapeCatchAll(value))
			}
		}
	}

	if used != len(params) {
		for key := range params {
			if !declares(segments, key) {
				return "", &ParamError{Route: routeName, Param: key, Err: ErrUnknownParam}
			}
		}
	}
	return b.String(), nil
}

func declares(segments []segment, key string) bool {
	for _, seg := range segments {
		if seg.kind != segmentStatic && seg.name == key {
			return true
		}
	}
	return false
}

func escapeCatchAll(value string) string {
	parts := strings.Split(strings.TrimLeft(value, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
