package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  schedule    Print a dated training schedule"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "      --date string   race date"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// `Use "trainplan [command] --help" for more information`
	footerRe = regexp.MustCompile(`^Use "`)
	// Quoted defaults inside flag descriptions: (default "marathon")
	flagDefaultRe = regexp.MustCompile(`\(default [^)]*\)`)
)

// colorizedHelpFunc returns a help function that prints the command
// description followed by cobra's usage text, colored line by line.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var b strings.Builder
		if desc := strings.TrimSpace(firstNonEmpty(cmd.Long, cmd.Short)); desc != "" {
			b.WriteString(Text(desc))
			b.WriteString("\n\n")
		}
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			b.WriteString(colorizeLine(line))
			b.WriteString("\n")
		}
		cmd.Print(b.String())
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + colorizeDefaults(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}

// colorizeDefaults dims the "(default ...)" suffix of a flag description.
func colorizeDefaults(desc string) string {
	loc := flagDefaultRe.FindStringIndex(desc)
	if loc == nil {
		return Text(desc)
	}
	return Text(desc[:loc[0]]) + Silent(desc[loc[0]:loc[1]]) + Text(desc[loc[1]:])
}
