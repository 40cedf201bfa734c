package lang

import "strings"

// Phonetic transliteration dictionaries. Keys may span several
// characters; Transliterate always prefers the longest key that fits at
// the current position (so "sch" wins over "s", "ж" maps to "zh").
var ruToEnTranslit = map[string]string{
	"а": "a", "б": "b", "в": "v", "г": "g", "д": "d", "е": "e",
	"ё": "yo", "ж": "zh", "з": "z", "и": "i", "й": "y", "к": "k",
	"л": "l", "м": "m", "н": "n", "о": "o", "п": "p", "р": "r",
	"с": "s", "т": "t", "у": "u", "ф": "f", "х": "kh", "ц": "ts",
	"ч": "ch", "ш": "sh", "щ": "sch", "ъ": "", "ы": "y", "ь": "",
	"э": "e", "ю": "yu", "я": "ya",
}

var enToRuTranslit = map[string]string{
	"sch": "щ", "sh": "ш", "ch": "ч", "zh": "ж", "kh": "х",
	"ts": "ц", "yo": "ё", "yu": "ю", "ya": "я", "iy": "ий",
	"a": "а", "b": "б", "c": "к", "d": "д", "e": "е", "f": "ф",
	"g": "г", "h": "х", "i": "и", "j": "дж", "k": "к", "l": "л",
	"m": "м", "n": "н", "o": "о", "p": "п", "q": "к", "r": "р",
	"s": "с", "t": "т", "u": "у", "v": "в", "w": "в", "x": "кс",
	"y": "й", "z": "з",
}

var (
	ruToEnMaxKey = maxKeyLen(ruToEnTranslit)
	enToRuMaxKey = maxKeyLen(enToRuTranslit)
)

func maxKeyLen(dict map[string]string) int {
	max := 0
	for k := range dict {
		if n := len([]rune(k)); n > max {
			max = n
		}
	}
	return max
}

// Transliterate rewrites text phonetically into the opposite script.
// Input is lowercased first; the direction follows the detected script.
// The second return value is false when the text is empty and no
// transliteration applies.
func Transliterate(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lowered := strings.ToLower(text)
	if DetectScript(lowered) == ScriptCyrillic {
		return transliterateWith(lowered, ruToEnTranslit, ruToEnMaxKey), true
	}
	return transliterateWith(lowered, enToRuTranslit, enToRuMaxKey), true
}

// transliterateWith performs greedy longest-match substitution over the
// rune sequence. Runes absent from the dictionary pass through.
func transliterateWith(text string, dict map[string]string, maxKey int) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		matched := false
		limit := maxKey
		if rest := len(runes) - i; rest < limit {
			limit = rest
		}
		for length := limit; length > 0; length-- {
			chunk := string(runes[i : i+length])
			if repl, ok := dict[chunk]; ok {
				b.WriteString(repl)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
