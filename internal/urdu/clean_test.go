package urdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLine_StripsPunctuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin punctuation", `dil, "ki" baat!`, "dil ki baat"},
		{"urdu full stop and comma become separators", "دل۔جان،غم", "دل جان غم"},
		{"zero width characters", "دل​جان‌", "دلجان"},
		{"question and exclamation", "کیا؟ واہ!", "کیا واہ"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanLine(tt.in))
		})
	}
}

func TestCleanLine_Idempotent(t *testing.T) {
	inputs := []string{
		"نقش فریادی ہے کس کی شوخیِ تحریر کا",
		"دل، جان۔ غم!",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := CleanLine(in)
		assert.Equal(t, once, CleanLine(once), "clean_line must be idempotent for %q", in)
	}
}

func TestCleanWord_Folds(t *testing.T) {
	// ا + madd sign folds to آ
	assert.Equal(t, "آم", CleanWord("آم"))
	// final ئ folds to یٔ
	assert.Equal(t, "کچھ", CleanWord("کچھ"))
	assert.Equal(t, "یٔ", CleanWord("ئ"))
	// ۂ (U+06C2) folds to ہ + hamza
	assert.Equal(t, "ۂ", CleanWord("ۂ"))
	assert.Equal(t, "", CleanWord(""))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain words", "دل کی بات", []string{"دل", "کی", "بات"}},
		{"urdu comma separates", "دل،جان", []string{"دل", "جان"}},
		{"empty line", "", nil},
		{"punctuation only", "،۔!?", nil},
		{"noon stop cluster splits", "کیونکہ", []string{"کیون", "کہ"}},
		{"short word with keh ending stays", "کہ", []string{"کہ"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenize_EmptyAfterCleaning(t *testing.T) {
	toks := Tokenize("  ، ۔  ")
	require.Empty(t, toks)
}
