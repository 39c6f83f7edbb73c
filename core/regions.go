package core

// regionLanguages maps region interest slugs to the language ids spoken
// there. Region interests resolve through this table instead of substring
// heuristics, which silently matched nothing when tag and interest locales
// differed.
var regionLanguages = map[string][]string{
	"east-asia":      {"japanese", "korean", "chinese"},
	"southeast-asia": {"thai", "vietnamese", "indonesian"},
	"south-asia":     {"hindi"},
	"europe":         {"french", "german", "italian", "spanish", "portuguese", "russian", "swedish"},
	"latin-america":  {"spanish", "portuguese"},
	"middle-east":    {"arabic", "persian", "turkish"},
	"africa":         {"swahili", "arabic", "french", "portuguese"},
	"north-america":  {"english", "french"},
	"oceania":        {"english"},
}
