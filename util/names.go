package util

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperName returns the all-caps form the older games use for default
// nicknames. A Caser keeps state, so one is built per call.
func UpperName(name string) string {
	return cases.Upper(language.English).String(name)
}
