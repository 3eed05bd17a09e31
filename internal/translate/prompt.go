// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"text/template"
)

// translationPromptTmpl instructs the model to output only the Japanese
// translation. The wording is deliberately strict: smaller models tend to
// add preambles or drift into romaji without it.
var translationPromptTmpl = template.Must(template.New("translation").Parse(`You are a silent, professional Japanese translation engine. Your task is to translate the following English academic abstract into Japanese.

**Strict Instructions:**
- **CRITICAL: You MUST output using Japanese characters (Kanji, Hiragana, Katakana). Do NOT use Romaji.**
- Translate the text into natural-sounding, clear, and accurate Japanese.
- Maintain a professional and academic tone.
- **CRITICAL: You MUST complete the translation.** Do not stop halfway.
- **CRITICAL: Do NOT output ANYTHING other than the translated Japanese text.** Do not include preambles, apologies, or any meta-commentary.

--- English Abstract ---
{{.Text}}
--- End of Abstract ---
`))

// renderPrompt executes the translation prompt template with the given text.
func renderPrompt(text string) (string, error) {
	var buf bytes.Buffer
	if err := translationPromptTmpl.Execute(&buf, struct{ Text string }{Text: text}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
