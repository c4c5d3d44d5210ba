package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// PrintTypewriter prints the model's narrative with a typewriter effect,
// stripping markdown.
func PrintTypewriter(text string) {
	text = strings.TrimSpace(stripMarkdown(text))
	if text == "" {
		return
	}

	pterm.Print(pterm.FgMagenta.Sprint("“"))
	for _, ch := range text {
		fmt.Print(string(ch))
		time.Sleep(5 * time.Millisecond)
	}
	pterm.Println(pterm.FgMagenta.Sprint("”"))
	fmt.Println()
}

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*(.+?)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reHeading    = regexp.MustCompile(`(?m)^#{1,3}\s+`)
)

func stripMarkdown(text string) string {
	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = reInlineCode.ReplaceAllString(text, "$1")
	text = reHeading.ReplaceAllString(text, "")
	return text
}
