package lang

// Physical keyboard correspondence between the standard Russian ЙЦУКЕН
// layout and QWERTY. Index i of one string shares a key with index i of
// the other, lowercase row first, then the uppercase/shifted row. The
// shifted Latin row includes the punctuation that sits on letter keys
// ({ } : " < >).
const (
	russianLayout = "йцукенгшщзхъфывапролджэячсмитьбюЙЦУКЕНГШЩЗХЪФЫВАПРОЛДЖЭЯЧСМИТЬБЮ"
	englishLayout = "qwertyuiop[]asdfghjkl;'zxcvbnm,.QWERTYUIOP{}ASDFGHJKL:\"ZXCVBNM<>"
)

var (
	ruToEn = buildLayoutTable(russianLayout, englishLayout)
	enToRu = buildLayoutTable(englishLayout, russianLayout)
)

func buildLayoutTable(from, to string) map[rune]rune {
	fromRunes := []rune(from)
	toRunes := []rune(to)
	table := make(map[rune]rune, len(fromRunes))
	for i, r := range fromRunes {
		table[r] = toRunes[i]
	}
	return table
}

// ConvertLayout remaps text typed on the wrong keyboard layout.
//
// Cyrillic-dominant input remaps only Cyrillic runes to their QWERTY
// counterparts, leaving digits and Latin fragments alone. Latin-dominant
// input remaps the whole string through the inverse table, including the
// punctuation keys that share a position with Cyrillic letters.
func ConvertLayout(text string) string {
	if text == "" {
		return text
	}

	out := make([]rune, 0, len(text))
	if DetectScript(text) == ScriptCyrillic {
		for _, r := range text {
			if r >= 0x0400 && r <= 0x04FF {
				if mapped, ok := ruToEn[r]; ok {
					out = append(out, mapped)
					continue
				}
			}
			out = append(out, r)
		}
		return string(out)
	}

	for _, r := range text {
		if mapped, ok := enToRu[r]; ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
