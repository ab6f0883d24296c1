package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// maxKeyPadding caps how far KeyValues pads keys to align values.
const maxKeyPadding = 50

func Color() aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	return Color().Bold(text).String()
}

func RedText(text string) string {
	return Color().Red(text).String()
}

func GreenText(text string) string {
	return Color().Green(text).String()
}

func YellowText(text string) string {
	return Color().Yellow(text).String()
}

func BlueText(text string) string {
	return Color().Blue(text).String()
}

func MagentaText(text string) string {
	return Color().Magenta(text).String()
}

func GrayText(text string) string {
	return Color().Gray(12, text).String()
}

// KeyValues renders a map as aligned "key: value" lines sorted by key.
func KeyValues(items map[string]string) string {
	keys := make([]string, 0, len(items))
	longest := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)

	if longest > maxKeyPadding {
		longest = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", longest+1, k+":", items[k])
	}
	return b.String()
}

// Truncate shortens s to n runes by replacing its middle with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n < 5 {
		n = 5
	}
	if len(runes) <= n {
		return s
	}
	keep := n - 3
	head := (keep + 1) / 2
	tail := keep / 2
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
