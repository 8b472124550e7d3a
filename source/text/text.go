// Linux terminal colors and a few other scraps of formatting, in one place so
// that everyone agrees about what an error looks like.
package text

import (
	"regexp"
)

const (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"
	PURPLE = "\033[35m"

	BULLET = "  ▪ "
	PROMPT = "→ "

	ERROR = RED + "error" + RESET + ": "
)

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

// Emphasizes a scrap of input or output by quoting it and turning it cyan.
func Emph(s string) string {
	return Cyan("'" + s + "'")
}

var ansi = regexp.MustCompile(`\033\[[0-9;]*m`)

// For testing, where the control codes are noise.
func StripColors(s string) string {
	return ansi.ReplaceAllString(s, "")
}
