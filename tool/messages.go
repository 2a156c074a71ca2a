// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// History description formats. The argument is the tool name.
const (
	msgPaint = "Paint with %s"
	msgFill  = "Fill with %s"
)

func init() {
	for _, m := range []struct {
		tag         language.Tag
		paint, fill string
	}{
		{language.German, "Malen mit %s", "Füllen mit %s"},
		{language.French, "Peindre avec %s", "Remplir avec %s"},
	} {
		_ = message.SetString(m.tag, msgPaint, m.paint)
		_ = message.SetString(m.tag, msgFill, m.fill)
	}
}

// describe formats a history description in the given language.
func describe(lang language.Tag, format, name string) string {
	return message.NewPrinter(lang).Sprintf(format, name)
}
