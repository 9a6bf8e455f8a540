package domain

import "strings"

// Intent is the coarse query category driving query rewriting and result
// formatting. The set is closed: every label the upstream classifier can
// produce maps onto exactly one of these values.
type Intent string

const (
	IntentNews       Intent = "news"
	IntentWeather    Intent = "weather"
	IntentSports     Intent = "sports"
	IntentPrice      Intent = "price"
	IntentDefinition Intent = "definition"
	IntentFacts      Intent = "facts"
	IntentGeneral    Intent = "general"
)

// ParseIntent normalizes a free-form search type label to an Intent.
// The label is lower-cased and trimmed; "scores" and "product" fold into
// their canonical intents, and anything unrecognized becomes IntentGeneral.
func ParseIntent(label string) Intent {
	switch strings.TrimSpace(strings.ToLower(label)) {
	case "news":
		return IntentNews
	case "weather":
		return IntentWeather
	case "sports", "scores":
		return IntentSports
	case "price", "product":
		return IntentPrice
	case "definition":
		return IntentDefinition
	case "facts":
		return IntentFacts
	default:
		return IntentGeneral
	}
}

// String implements fmt.Stringer.
func (i Intent) String() string { return string(i) }
