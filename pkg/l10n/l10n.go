// Package l10n holds the translated user-facing strings.
package l10n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English strings.
const (
	MsgNotEditing    = "This command can only be used when editing text"
	MsgToggleToolbar = "Toggle toolbar display"
	MsgInvalidConfig = "Some commands could not be loaded: %s"
)

var zhCN = map[string]string{
	MsgNotEditing:    "此命令只能在编辑文本时使用",
	MsgToggleToolbar: "切换工具栏显示",
	MsgInvalidConfig: "部分命令无法加载：%s",

	"Wrap as page":              "包裹为页面引用",
	"Wrap with cloze":           "包裹为填空",
	"Wrap with invisible":       "包裹为隐藏文字",
	"Wrap as bold text":         "加粗",
	"Wrap as underline text":    "下划线",
	"Wrap as delline text":      "删除线",
	"Wrap as italic text":       "斜体",
	"Wrap as inlinecode":        "行内代码",
	"Wrap with red highlight":   "红色高亮",
	"Wrap with green highlight": "绿色高亮",
	"Wrap with blue highlight":  "蓝色高亮",
	"Wrap with red text":        "红色文字",
	"Wrap with green text":      "绿色文字",
	"Wrap with blue text":       "蓝色文字",
	"Wrap as formular":          "公式",
	"Remove formatting":         "清除格式",
}

var builder = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range zhCN {
		// keys and messages are static, SetString only fails on a malformed tag
		_ = b.SetString(language.SimplifiedChinese, key, msg)
		_ = b.SetString(language.English, key, key)
	}
	return b
}

// Match returns the supported language closest to the given locales
// ("zh-CN", "en-US", ...). Unknown or empty locales fall back to English.
func Match(locales ...string) language.Tag {
	matcher := language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})
	tag, _ := language.MatchStrings(matcher, locales...)
	base, _ := tag.Base()
	if base.String() == "zh" {
		return language.SimplifiedChinese
	}
	return language.English
}

// Printer returns a printer for tag backed by the translation catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(builder))
}

// Translate renders key for locale without format arguments. Strings the
// catalog does not know, like user supplied labels, come back untouched.
func Translate(tag language.Tag, key string) string {
	if _, ok := zhCN[key]; !ok {
		return key
	}
	return Printer(tag).Sprintf(key)
}
