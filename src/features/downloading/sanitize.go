package downloading

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// FileExtension is appended to every generated filename; the service's
// progressive streams are always 128kbps mp3.
const FileExtension = ".mp3"

// validChars is the fixed allow-set for filenames: ASCII letters and
// digits, the Nordic vowels, space, ampersand, underscore, hyphen and
// parentheses. Everything else is dropped, not replaced, which keeps
// path separators and control characters out of the result.
const validChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"æøåÆØÅ" +
	" &_-0123456789()"

// TrackFilename derives the output filename for a track. Titles without
// a hyphen get an "Uploader - " prefix; titles with one are assumed to
// already carry the artist name, so a title with an unrelated hyphen
// loses the prefix. Known imprecision, kept on purpose.
func TrackFilename(title, uploader string) string {
	if !strings.Contains(title, "-") {
		title = uploader + " - " + title
	}
	return SafeFilename(title)
}

// SafeFilename filters name down to the allow-set and appends the audio
// extension. The result can degenerate to the bare extension when no
// character survives; callers handle that rather than reject it.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, ch := range name {
		if strings.ContainsRune(validChars, ch) {
			b.WriteRune(ch)
		}
	}
	return b.String() + FileExtension
}

// DisplayName folds a filename to plain ASCII for console output, so
// names render on terminals that choke on the extended characters the
// allow-set lets through. Only ever used for printing; the file on disk
// keeps the unfolded name.
func DisplayName(name string) string {
	return unidecode.Unidecode(name)
}
