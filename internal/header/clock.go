package header

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Clock supplies the render-time instant. Injected so that date-dependent
// renderer output stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Date layouts for the header fields. Creation dates carry no time of day;
// modification dates do.
const (
	creationLayout     = "Monday 2 January 2006"
	modificationLayout = "Monday 2 January 2006 @ 15:04:05"
)

// localeAliases maps the short locale tags accepted in configuration to full
// locale identifiers. Full identifiers ("fr_FR") pass through unchanged.
var localeAliases = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"es": monday.LocaleEsES,
	"it": monday.LocaleItIT,
	"nl": monday.LocaleNlNL,
	"pt": monday.LocalePtPT,
	"ru": monday.LocaleRuRU,
	"ja": monday.LocaleJaJP,
	"zh": monday.LocaleZhCN,
}

func resolveLocale(tag string) monday.Locale {
	if loc, ok := localeAliases[strings.ToLower(tag)]; ok {
		return loc
	}
	if strings.Contains(tag, "_") {
		return monday.Locale(tag)
	}
	return monday.LocaleEnUS
}

func formatCreation(t time.Time, locale string) string {
	return monday.Format(t, creationLayout, resolveLocale(locale))
}

func formatModification(t time.Time, locale string) string {
	return monday.Format(t, modificationLayout, resolveLocale(locale))
}
