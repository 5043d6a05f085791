package locale

// Language is the site-wide display language. Arabic is the primary
// language of the academy; English is the only alternative.
type Language string

const (
	Arabic  Language = "AR"
	English Language = "EN"
)

// Default is the language a fresh session starts in.
const Default = Arabic

// Pick selects between the Arabic and English variant of a bilingual
// field. Every bilingual read in the codebase must go through here so
// the selection rule lives in one place. Both variants are required
// data; an empty English variant is a content bug, not a fallback case.
func Pick(lang Language, ar, en string) string {
	if lang == English {
		return en
	}
	return ar
}

// PickList is Pick for the parallel string-list fields (tags, features,
// rotating buildables).
func PickList(lang Language, ar, en []string) []string {
	if lang == English {
		return en
	}
	return ar
}

// Toggle flips between the two languages. Applying it twice always
// restores the original language.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

// Direction returns the document text direction for the language.
func (l Language) Direction() string {
	if l == English {
		return "ltr"
	}
	return "rtl"
}

// Tag returns the BCP-47 language tag used for document metadata.
func (l Language) Tag() string {
	if l == English {
		return "en"
	}
	return "ar"
}

// Normalize maps loose user input ("en", "EN", "ar", anything else) to
// a valid Language. Unknown values resolve to the default.
func Normalize(v string) Language {
	switch v {
	case "en", "EN", "ltr":
		return English
	case "ar", "AR", "rtl":
		return Arabic
	default:
		return Default
	}
}
