package parser

import (
	"strings"
	"unicode/utf8"
)

// Policies for URLs that do not contain the marker.
const (
	// MissingDropFirst returns the URL without its first character.
	MissingDropFirst = "drop-first"
	// MissingWhole returns the URL unchanged.
	MissingWhole = "whole"
	// MissingEmpty returns an empty string.
	MissingEmpty = "empty"
)

// DefaultMarker separates a link's prefix from the extracted suffix.
const DefaultMarker = "="

// Suffix returns the part of url following the first occurrence of marker.
// When marker is absent the result depends on missing; an empty url always
// yields an empty string.
func Suffix(url, marker, missing string) string {
	if url == "" {
		return ""
	}
	if marker == "" {
		marker = DefaultMarker
	}
	if idx := strings.Index(url, marker); idx >= 0 {
		return url[idx+len(marker):]
	}

	switch missing {
	case MissingWhole:
		return url
	case MissingEmpty:
		return ""
	default:
		_, size := utf8.DecodeRuneInString(url)
		return url[size:]
	}
}
