// Package glang looks up UI strings in the JSON language packs.
package glang

import (
	"encoding/json"
	"fmt"

	"jigsaw/src/ui/gui/gbase/gassets"
)

const Fallback = "en"

type GUILangWorker struct {
	workdir string
	lang    string
	langs   []string
	dict    map[string]string
}

// NewGUILangWorker loads lang, or Fallback when no pack of that name exists.
func NewGUILangWorker(workdir, lang string) (*GUILangWorker, error) {
	langs, err := gassets.Names(workdir, ".json")
	if err != nil {
		return nil, err
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no language packs in %s", workdir)
	}
	lw := &GUILangWorker{workdir: workdir, langs: langs}
	if !lw.has(lang) {
		lang = Fallback
	}
	if err := lw.SetLang(lang); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) has(lang string) bool {
	for _, l := range lw.langs {
		if l == lang {
			return true
		}
	}
	return false
}

func (lw *GUILangWorker) Lang() string { return lw.lang }

func (lw *GUILangWorker) Langs() []string {
	return append([]string(nil), lw.langs...)
}

// Next is the language after the current one, wrapping around.
func (lw *GUILangWorker) Next() string {
	for i, l := range lw.langs {
		if l == lw.lang {
			return lw.langs[(i+1)%len(lw.langs)]
		}
	}
	return lw.langs[0]
}

// SetLang keeps the current pack when the new one cannot be read.
func (lw *GUILangWorker) SetLang(lang string) error {
	data, err := gassets.ReadAsset(lw.workdir + "/" + lang + ".json")
	if err != nil {
		return fmt.Errorf("language %q: %w", lang, err)
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("language %q: %w", lang, err)
	}
	lw.lang = lang
	lw.dict = dict
	return nil
}

// T returns the key itself when it has no translation.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}
