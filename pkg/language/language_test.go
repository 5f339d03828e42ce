package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]Code{"en": English, "English": English, " HI ": Hindi, "hindi": Hindi} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("fr")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Code
	}{
		{"short english", "How do I file an FIR?", English},
		{"short hindi", "तलाक?", Hindi},
		{"short mixed", "FIR कैसे?", Hindi},
		{"long hindi", "किरायेदार के रूप में मेरे क्या अधिकार हैं और मकान मालिक क्या कर सकता है?", Hindi},
		{"long english with one hindi word", "What are my rights as a tenant under the rent control act, तलाक", English},
		{"digits only", "12345", English},
		{"empty", "", English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.text))
		})
	}
}

func TestNormalizeHindi(t *testing.T) {
	assert.Equal(t, "तलाक की प्रक्रिया", NormalizeHindi("  तलाक   की\tप्रक्रिया "))
}

func TestGlossary(t *testing.T) {
	assert.Equal(t, "तलाक(divorce) की प्रक्रिया", GlossHindiToEnglish("तलाक की प्रक्रिया"))
	assert.Equal(t, "Police(पुलिस) must register an FIR(एफआईआर).",
		GlossEnglishToHindi("Police must register an FIR."))
	assert.Equal(t, "lawyers are not matched", GlossEnglishToHindi("lawyers are not matched"))
	assert.Equal(t, "same", Gloss("same", English, English))
}
