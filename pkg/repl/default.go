package repl

// Alternatives of the built-in clear command, highest priority first. The
// color marker reference comes first so "[[#red]]==x==" collapses to "x"
// instead of the generic reference keeping "#red".
var DefaultAlternatives = []string{
	`\[\[(?:#|\$)(?:red|green|blue)\]\]`,
	`==([^=]*)==`,
	`~~([^~]*)~~`,
	`\^\^([^\^]*)\^\^`,
	`\*\*([^\*]*)\*\*`,
	`\*([^\*]*)\*`,
	`_([^_]*)_`,
	`\$([^\$]*)\$`,
	"`([^`]*)`",
	`\[:mark\s+\{:class\s+"(?:\$|#)?(?:yellow|pink|blue|green|red|grey|gray|orange|purple)"\}\s+"(.*?)"\]`,
	`\[:u\s+"([^"]*)"\]`,
	`\[\[([^\]]*)\]\]`,
}

// DefaultReplacement is the reassembly the settings format spells out for
// DefaultAlternatives.
const DefaultReplacement = "$1$2$3$4$5$6$7$8$9$10$11"

var defaultTable = MustCompile(DefaultAlternatives...)

// DefaultTable returns the compiled built-in table.
func DefaultTable() *Table {
	return defaultTable
}
