package l10n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/mdwrap/pkg/l10n"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{locale: "zh-CN", want: language.SimplifiedChinese},
		{locale: "zh", want: language.SimplifiedChinese},
		{locale: "en-US", want: language.English},
		{locale: "fr", want: language.English},
		{locale: "", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, l10n.Match(tt.locale))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "此命令只能在编辑文本时使用", l10n.Translate(language.SimplifiedChinese, l10n.MsgNotEditing))
	assert.Equal(t, l10n.MsgNotEditing, l10n.Translate(language.English, l10n.MsgNotEditing))
	assert.Equal(t, "清除格式", l10n.Translate(language.SimplifiedChinese, "Remove formatting"))
	assert.Equal(t, "custom label", l10n.Translate(language.SimplifiedChinese, "custom label"))
}
