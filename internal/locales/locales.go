package locales

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/uk"
	ut "github.com/go-playground/universal-translator"

	pmodel "WeatherHubBot/pkg/models"
)

// Args: именованные подстановки для шаблона: {city} -> "Kyiv"
type Args map[string]string

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Resolver отдаёт локализованные строки по языку и ключу.
// Каталоги загружаются один раз и дальше только читаются, поэтому Resolver безопасен для горутин.
type Resolver struct {
	translators map[pmodel.Language]ut.Translator
	// порядок именованных параметров для каждого шаблона
	params map[pmodel.Language]map[string][]string
}

func New() (*Resolver, error) {
	return newResolver(catalogs)
}

func newResolver(src map[pmodel.Language]map[string]string) (*Resolver, error) {
	supported := map[pmodel.Language]locales.Translator{
		pmodel.LanguageUkrainian: uk.New(),
		pmodel.LanguageEnglish:   en.New(),
		pmodel.LanguageGerman:    de.New(),
	}

	uni := ut.New(en.New(), uk.New(), en.New(), de.New())

	r := &Resolver{
		translators: make(map[pmodel.Language]ut.Translator, len(supported)),
		params:      make(map[pmodel.Language]map[string][]string, len(supported)),
	}

	for _, lang := range pmodel.Languages {
		loc, ok := supported[lang]
		if !ok {
			return nil, fmt.Errorf("no locale data for language %q", lang)
		}
		trans, found := uni.GetTranslator(loc.Locale())
		if !found {
			return nil, fmt.Errorf("translator for %q not registered", loc.Locale())
		}

		messages, ok := src[lang]
		if !ok {
			return nil, fmt.Errorf("no catalog for language %q", lang)
		}

		r.params[lang] = make(map[string][]string, len(messages))
		for key, text := range messages {
			positional, names := toPositional(text)
			if err := trans.Add(key, positional, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", lang, key, err)
			}
			r.params[lang][key] = names
		}
		r.translators[lang] = trans
	}

	return r, nil
}

// toPositional переводит {name} в {0}, {1}... в порядке появления в тексте
func toPositional(text string) (string, []string) {
	var names []string
	out := placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		names = append(names, name)
		return fmt.Sprintf("{%d}", len(names)-1)
	})
	return out, names
}

// GetText возвращает строку на языке lang.
// Если ключа нет, пробуем язык по умолчанию, затем возвращаем сам ключ.
// Отсутствующие аргументы подставляются пустой строкой.
func (r *Resolver) GetText(lang pmodel.Language, key string, args Args) string {
	if text, ok := r.lookup(lang, key, args); ok {
		return text
	}
	if lang != pmodel.DefaultLanguage {
		if text, ok := r.lookup(pmodel.DefaultLanguage, key, args); ok {
			return text
		}
	}
	return key
}

func (r *Resolver) lookup(lang pmodel.Language, key string, args Args) (string, bool) {
	trans, ok := r.translators[lang]
	if !ok {
		return "", false
	}
	names, ok := r.params[lang][key]
	if !ok {
		return "", false
	}

	values := make([]string, len(names))
	for i, name := range names {
		values[i] = args[name]
	}

	text, err := trans.T(key, values...)
	if err != nil {
		return "", false
	}
	return text, true
}

// Keys возвращает отсортированные ключи каталога языка
func (r *Resolver) Keys(lang pmodel.Language) []string {
	keys := make([]string, 0, len(r.params[lang]))
	for k := range r.params[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
