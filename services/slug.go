package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"filmhay-backend/models"
)

// ToSlug derives the URL identifier of a title: lower-cased, anything but
// letters, digits, underscores, hyphens and whitespace removed, and every
// whitespace run replaced by a single hyphen. Different titles may collide.
func ToSlug(title string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(norm.NFC.String(title)) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		// stripped punctuation does not end a whitespace run: "a : b" is "a-b"
		if !keepInSlug(r) {
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func keepInSlug(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// FacetSlug is the genre/country form: lower-cased, whitespace runs replaced
// by a hyphen, nothing stripped
func FacetSlug(name string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(norm.NFC.String(name)) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveSlug returns the first record in catalog order whose title maps to
// slug. Nothing is indexed, so title edits are picked up immediately.
func ResolveSlug(slug string, records []models.MovieRecord) (models.MovieRecord, bool) {
	slug = norm.NFC.String(slug)
	for _, rec := range records {
		if ToSlug(rec.Title) == slug {
			return rec, true
		}
	}
	return models.MovieRecord{}, false
}
