package command

import (
	"strings"

	"github.com/walteh/mdwrap/pkg/repl"
)

// colorTemplate is the highlight/text-color template for a marker such as
// "#red" or "$blue". Org graphs use a marker reference plus ^^, markdown
// graphs use an inline mark with the marker as its class.
func colorTemplate(format Format, marker string) string {
	if format == FormatOrg {
		return "[[" + marker + "]]^^$^^^"
	}
	return `[:mark {:class "` + marker + `"} "$^"]`
}

// Builtins returns the default command table used when settings define no
// commands.
func Builtins(format Format) []Definition {
	return []Definition{
		&Wrap{Key: "wrap-page", Label: "Wrap as page", Template: "[[$^]]"},
		&Group{Key: "group-cloze", Items: []Definition{
			&Wrap{Key: "wrap-cloze", Label: "Wrap with cloze", Template: " {{cloze $^}}"},
			&Wrap{Key: "wrap-cloze-invisible", Label: "Wrap with invisible", Template: "[[cloze]]==$^=="},
		}},
		&Group{Key: "group-style", Items: []Definition{
			&Wrap{Key: "wrap-bold", Label: "Wrap as bold text", Template: "**$^**"},
			&Wrap{Key: "wrap-underline", Label: "Wrap as underline text", Template: `[:u "$^"]`},
			&Wrap{Key: "wrap-delline", Label: "Wrap as delline text", Template: "~~$^~~"},
			&Wrap{Key: "wrap-italic", Label: "Wrap as italic text", Template: "_$^_"},
			&Wrap{Key: "wrap-inlinecode", Label: "Wrap as inlinecode", Template: "`$^`"},
		}},
		&Group{Key: "group-hl", Items: []Definition{
			&Wrap{Key: "wrap-red-hl", Label: "Wrap with red highlight", Template: colorTemplate(format, "#red")},
			&Wrap{Key: "wrap-green-hl", Label: "Wrap with green highlight", Template: colorTemplate(format, "#green")},
			&Wrap{Key: "wrap-blue-hl", Label: "Wrap with blue highlight", Template: colorTemplate(format, "#blue")},
		}},
		&Group{Key: "group-text", Items: []Definition{
			&Wrap{Key: "wrap-red-text", Label: "Wrap with red text", Template: colorTemplate(format, "$red")},
			&Wrap{Key: "wrap-green-text", Label: "Wrap with green text", Template: colorTemplate(format, "$green")},
			&Wrap{Key: "wrap-blue-text", Label: "Wrap with blue text", Template: colorTemplate(format, "$blue")},
		}},
		&Wrap{Key: "wrap-formular", Label: "Wrap as formular", Template: "$$$^$$"},
		&Clear{
			Key:         "repl-clear",
			Label:       "Remove formatting",
			Binding:     "mod+shift+x",
			Regex:       strings.Join(repl.DefaultAlternatives, "|"),
			Replacement: ptr(repl.DefaultReplacement),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
