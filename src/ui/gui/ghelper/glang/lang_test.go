package glang

import (
	"reflect"
	"testing"
)

func TestLangWorker(t *testing.T) {
	lw, err := NewGUILangWorker("assets/lang", "en")
	if err != nil {
		t.Fatal(err)
	}
	if got := lw.T("menu.play"); got != "Play" {
		t.Errorf("T(menu.play) = %q", got)
	}
	if got := lw.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
	if !reflect.DeepEqual(lw.Langs(), []string{"en", "ru"}) {
		t.Errorf("Langs = %v", lw.Langs())
	}
	if lw.Next() != "ru" {
		t.Errorf("Next = %q", lw.Next())
	}
	if err := lw.SetLang(lw.Next()); err != nil {
		t.Fatal(err)
	}
	if lw.Lang() != "ru" || lw.T("menu.play") != "Играть" {
		t.Errorf("ru not loaded: %v %q", lw.Lang(), lw.T("menu.play"))
	}
	if lw.Next() != "en" {
		t.Errorf("Next does not wrap: %q", lw.Next())
	}
	if err := lw.SetLang("zz"); err == nil {
		t.Errorf("unknown language loaded")
	}
	if lw.Lang() != "ru" {
		t.Errorf("failed SetLang changed the language")
	}
}

func TestLangWorkerFallback(t *testing.T) {
	lw, err := NewGUILangWorker("assets/lang", "de")
	if err != nil {
		t.Fatal(err)
	}
	if lw.Lang() != Fallback {
		t.Errorf("Lang = %q, want %q", lw.Lang(), Fallback)
	}
}

func TestLangWorkerNoPacks(t *testing.T) {
	if _, err := NewGUILangWorker("assets/none", "en"); err == nil {
		t.Errorf("missing pack directory accepted")
	}
}
