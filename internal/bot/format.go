package bot

import (
	"regexp"
	"time"
)

var mdSpecial = regexp.MustCompile("([_*\\[\\]()~`>#+\\-=|{}.!\\\\])")

// escapeMarkdown escapes Telegram MarkdownV2 special characters.
func escapeMarkdown(text string) string {
	if text == "" {
		return ""
	}
	return mdSpecial.ReplaceAllString(text, `\$1`)
}

var istZone = time.FixedZone("IST", 5*3600+30*60)

// unixToIST renders a platform timestamp the way the operators expect it.
func unixToIST(ts int64) string {
	return time.Unix(ts, 0).In(istZone).Format("02 January 2006, 03:04 PM")
}
