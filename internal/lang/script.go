// Package lang provides script detection, keyboard layout conversion and
// phonetic transliteration between Cyrillic and Latin text. Layout
// conversion remaps characters by shared physical key position;
// transliteration rewrites text phonetically. The two are independent
// transforms used to generate query variants.
package lang

// Script identifies the dominant writing system of a piece of text.
type Script int

const (
	// ScriptCyrillic is the default: ties and letter-free input resolve
	// to Cyrillic (the catalog's primary language).
	ScriptCyrillic Script = iota
	// ScriptLatin means ASCII letters outnumber Cyrillic ones.
	ScriptLatin
)

// String returns a human-readable representation of the script.
func (s Script) String() string {
	if s == ScriptLatin {
		return "latin"
	}
	return "cyrillic"
}

// DetectScript counts Cyrillic vs ASCII letters. Cyrillic wins ties so
// that mixed catalog queries stay on the primary-language path.
func DetectScript(text string) Script {
	var cyrillic, latin int
	for _, r := range text {
		switch {
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	if cyrillic >= latin {
		return ScriptCyrillic
	}
	return ScriptLatin
}
