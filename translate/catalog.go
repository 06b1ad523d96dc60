package translate

import (
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// catalog holds the en-US formats and their German translations.
// Formats without a translation are printed as-is.
var catalog = []struct {
	key string
	de  string
}{
	{"line %v '%v' %v", "Zeile %v '%v' %v"},
	{"line %v %v", "Zeile %v %v"},
	{"label %v missing", "Label %v existiert nicht"},
	{"label duplicated", "Label doppelt definiert"},
	{"label name missing", "Labelname fehlt"},
	{"opcode invalid", "unbekannter Befehl"},
	{"excessive arguments", "zu viele Argumente"},
	{"parameter missing", "Parameter fehlt"},
	{"constants must begin with a letter", "Konstanten müssen mit einem Buchstaben beginnen"},
	{"constant duplicated", "Konstante doppelt definiert"},
	{"#DEF syntax, use e.g. '#DEF MAX=100'", "#DEF Syntax, z.B. '#DEF MAX=100'"},
	{"#DEF value is not a number, use e.g. '#DEF MAX=100'", "#DEF Wert ist keine Zahl, z.B. '#DEF MAX=100'"},
	{"illegal argument '%v', constant might not have been initialized", "ungültiges Argument '%v', Konstante evtl. nicht initialisiert"},
	{"address %v missing", "Adresse %v existiert nicht"},
	{"nonexistent address %v", "nicht existierende Adresse %v"},
	{"illegal 20-bit constant %v", "ungültige 20-Bit Konstante %v"},
	{"$(%v) is not a valid expression", "$(%v) ist kein gültiger Ausdruck"},
	{"in opcode %v", "in Befehl %v"},
	{"ignore jump", "Sprung ignoriert"},
	{"Memory (final state)", "Speicher (Endzustand)"},
	{"Executing %v", "Führe %v aus"},
}

func loadCatalog() {
	for _, entry := range catalog {
		err := message.SetString(language.German, entry.key, entry.de)
		if err != nil {
			log.Printf("mima: catalog: %v: %v", entry.key, err)
		}
	}
}
