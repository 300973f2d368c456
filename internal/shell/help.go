package shell

import (
	"fmt"
	"strings"

	"noknock/internal/commands"
)

// HelpMarkdown renders the command reference for defs as markdown.
func HelpMarkdown(defs []commands.Definition) string {
	var b strings.Builder
	b.WriteString("# NoKnock commands\n\n")
	b.WriteString("Indices are the numbers shown in the patient and session lists.\n\n")

	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, d := range defs {
		fmt.Fprintf(&b, "| `%s` | %s |\n", d.Word, d.Description)
	}

	for _, d := range defs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n\n", d.Word, d.Description)
		fmt.Fprintf(&b, "```\n%s\n```\n", d.UsageLine())
		if len(d.Examples) > 0 {
			b.WriteString("\nExamples:\n\n")
			for _, ex := range d.Examples {
				if ex.Description == "" {
					fmt.Fprintf(&b, "- `%s`\n", ex.Command)
					continue
				}
				fmt.Fprintf(&b, "- `%s`: %s\n", ex.Command, ex.Description)
			}
		}
		for _, note := range d.Notes {
			fmt.Fprintf(&b, "\n> %s\n", note)
		}
	}
	return b.String()
}
