package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"noknock/internal/commands"
)

func TestHelpMarkdown(t *testing.T) {
	defs := []commands.Definition{
		{
			Word:        "add-nok",
			Description: "Adds a next-of-kin",
			Usage:       "PATIENT_INDEX n/NAME p/PHONE r/RELATIONSHIP",
			Examples: []commands.HelpExample{
				{Command: "add-nok 1 n/Tan Mei p/98765432 r/Daughter", Description: "adds a daughter"},
				{Command: "add-nok 2 n/Lim p/123 r/Son"},
			},
			Notes: []string{"Duplicates are rejected."},
		},
		{Word: "exit", Description: "Exits NoKnock"},
	}

	md := HelpMarkdown(defs)
	assert.Contains(t, md, "| `add-nok` | Adds a next-of-kin |")
	assert.Contains(t, md, "```\nadd-nok PATIENT_INDEX n/NAME p/PHONE r/RELATIONSHIP\n```")
	assert.Contains(t, md, "- `add-nok 1 n/Tan Mei p/98765432 r/Daughter`: adds a daughter")
	assert.Contains(t, md, "- `add-nok 2 n/Lim p/123 r/Son`\n")
	assert.Contains(t, md, "> Duplicates are rejected.")
	assert.Contains(t, md, "```\nexit\n```")
	assert.Less(t, strings.Index(md, "## add-nok"), strings.Index(md, "## exit"))
}
