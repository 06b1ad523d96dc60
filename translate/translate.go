// Package translate formats user visible messages for the MiMa emulator.
//
// Messages are written as en-US Sprintf() formats, and are looked up
// in the golang.org/x/text message catalog for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages. The first is used when no locale matches.
var supported = []language.Tag{
	language.English,
	language.German,
}

var printer *message.Printer

func init() {
	loadCatalog()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mima: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag, _ := language.MatchStrings(language.NewMatcher(supported), locales...)
	printer = message.NewPrinter(tag)
}

// SetLanguage overrides the language selected from the user's locale.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
