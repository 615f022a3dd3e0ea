// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// translations are the labels shown by the table, keyed by their
// English text. English has no entries and uses the keys.
var translations = map[language.Tag]map[string]string{
	language.French: {
		"Name":                            "Nom",
		"Color":                           "Couleur",
		"Mode":                            "Mode",
		"Activated":                       "Activé",
		"fill":                            "plein",
		"wire":                            "filaire",
		"Rendering mode (fill/wireframe)": "Mode de rendu (plein/filaire)",
	},
	language.German: {
		"Name":                            "Name",
		"Color":                           "Farbe",
		"Mode":                            "Modus",
		"Activated":                       "Aktiviert",
		"fill":                            "gefüllt",
		"wire":                            "Gitter",
		"Rendering mode (fill/wireframe)": "Darstellung (gefüllt/Gitternetz)",
	},
}

// Catalog is the message catalog of the table labels.
var Catalog = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			b.SetString(tag, key, msg)
		}
	}
	return b
}

// languages are English followed by the translated languages.
var languages = append([]language.Tag{language.English}, Catalog.Languages()...)

var matcher = language.NewMatcher(languages)

// NewPrinter returns a printer for the labels in the given language,
// which can be any BCP 47 tag such as "fr" or "de-CH".
// Unknown or unsupported languages give English labels.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(languages[idx], message.Catalog(Catalog))
}
