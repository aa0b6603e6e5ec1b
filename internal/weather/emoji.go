package weather

import "strings"

var emojiRules = []struct {
	emoji    string
	keywords []string
}{
	{"🌧️", []string{"дощ", "rain", "regen"}},
	{"❄️", []string{"сніг", "snow", "schnee"}},
	{"☁️", []string{"хмар", "похмуро", "cloud", "wolk", "bewölkt", "bedeckt"}},
	{"☀️", []string{"ясно", "чисте", "сонячно", "clear", "sun", "klar", "sonn"}},
	{"🌫️", []string{"туман", "fog", "mist", "nebel", "dunst"}},
	{"⛈️", []string{"гроза", "thunder", "storm", "gewitter"}},
}

// Emoji подбирает эмодзи по ключевым словам описания; порядок правил важен
func Emoji(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range emojiRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.emoji
			}
		}
	}
	return "🌤️"
}
