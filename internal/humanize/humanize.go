package humanize

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/Xuanwo/go-locale"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/goodsign/monday"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

var Locale monday.Locale = monday.LocaleEnUS // changed on init

var localeOnce sync.Once

func lettersOnly(str string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, str)
}

func ensureLocale() {
	localeOnce.Do(func() {
		if tag, err := locale.Detect(); err == nil {
			Locale = monday.Locale(lettersOnly(tag.String()))
		}

		// Check if locale is supported
		for _, locale := range monday.ListLocales() {
			if lettersOnly(string(locale)) == string(Locale) {
				Locale = locale
				return
			}
		}

		log.Println("Locale", Locale, "not found, defaulting to en_US")
		Locale = monday.LocaleEnUS
	})
}

// TimeAgo formats a modification time relative to now.
func TimeAgo(t time.Time) string {
	ensureLocale()

	trunc := t.Truncate(Day)
	now := time.Now().Truncate(Day)

	if trunc.Equal(now) {
		return monday.Format(t, "Today at 15:04", Locale)
	}

	if trunc.Truncate(Week).Equal(now.Truncate(Week)) {
		return monday.Format(t, "Monday at 15:04", Locale)
	}

	return monday.Format(t, "15:04 02/01/2006", Locale)
}

// Strings joins a list the way a sentence would.
func Strings(list []string) string {
	switch len(list) {
	case 0:
		return ""
	case 1:
		return list[0]
	default:
		return strings.Join(list[:len(list)-1], ", ") + " and " + list[len(list)-1]
	}
}

// Plural formats n with the right form of noun, which takes an "s".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// TrimString cuts str to at most maxlen runes, ellipsis included.
func TrimString(str string, maxlen int) string {
	runes := []rune(str)
	if len(runes) <= maxlen {
		return str
	}
	if maxlen <= 3 {
		return string(runes[:maxlen])
	}

	return string(runes[:maxlen-3]) + "..."
}

var ByteUnits = [...]string{"bytes", "KB", "MB", "GB", "TB"}

func Size(size uint64) string {
	if size < 1024 {
		return fmt.Sprintf("%d %s", size, ByteUnits[0])
	}

	f := float64(size)
	unit := 0

	for f >= 1024 && unit < len(ByteUnits)-1 {
		f /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", f, ByteUnits[unit])
}
