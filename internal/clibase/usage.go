// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"ariba/internal/version"
)

// HelpContact is printed at the bottom of every help text.
const HelpContact = "https://github.com/suhrig/arriba/issues"

const (
	helpWidth  = 80
	helpIndent = 6
)

// HelpEntry documents one flag.
type HelpEntry struct {
	Signature string // e.g. "-c FILE"
	Text      string // may contain explicit newlines
}

// Banner is the fixed head of a help text.
type Banner struct {
	Title string
	About []string // paragraph lines, printed as-is
	Usage []string // synopsis lines
}

// WriteUsage renders the complete help text. A non-empty msg is printed
// first as the error that triggered it.
func WriteUsage(w io.Writer, msg string, b Banner, entries []HelpEntry) {
	if msg != "" {
		_, _ = fmt.Fprintf(w, "ERROR: %s\n", msg)
	}
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", b.Title, strings.Repeat("-", len(b.Title)))
	_, _ = fmt.Fprintf(w, "Version: %s\n\n", version.Version)
	for _, line := range b.About {
		_, _ = fmt.Fprintln(w, line)
	}
	if len(b.About) > 0 {
		_, _ = fmt.Fprintln(w)
	}
	for _, line := range b.Usage {
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintln(w)
	for _, e := range entries {
		_, _ = io.WriteString(w, WrapHelp(e.Signature, e.Text))
	}
	_, _ = fmt.Fprintf(w, "Questions or problems may be sent to: %s\n", HelpContact)
}

// WrapHelp formats one flag: the signature on its own line, then the text
// wrapped and indented below it, then a blank line.
func WrapHelp(signature, text string) string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(signature)
	b.WriteString("\n")
	pad := strings.Repeat(" ", helpIndent)
	for _, line := range strings.Split(wordwrap.WrapString(text, helpWidth-helpIndent), "\n") {
		b.WriteString(pad)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// OnOff renders a boolean default.
func OnOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
