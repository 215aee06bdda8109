// Package categorizer assigns spending categories to transaction
// descriptions with simple keyword matching.
package categorizer

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Fallback is the category name returned when no rule matches a
// non-empty description.
const Fallback = "Other"

// Rule maps a category name to the keywords that select it.
type Rule struct {
	Name     string
	Keywords []string
}

// RuleSet is an ordered list of rules. Order is significant: the first
// matching rule wins.
type RuleSet []Rule

// Categorizer matches transaction descriptions against a fixed rule set.
type Categorizer struct {
	rules RuleSet
}

// New returns a Categorizer for the rule set that is passed.
// The rule set must not be modified afterwards.
func New(rules RuleSet) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize returns the name of the first category with a keyword that
// is a substring of the lower-cased description.
//
// An empty description returns "", which is distinct from Fallback:
// "" means "nothing to classify", Fallback means "classified, but no
// rule matched".
func (c *Categorizer) Categorize(description string) string {
	if description == "" {
		return ""
	}

	desc := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if glob.Glob("*"+keyword+"*", desc) {
				return rule.Name
			}
		}
	}

	return Fallback
}

// DefaultRules returns the built-in keyword table. The category names
// match the categories seeded into the database.
func DefaultRules() RuleSet {
	return RuleSet{
		{Name: "Food & Dining", Keywords: []string{"restaurant", "cafe", "food", "grocery", "supermarket", "zomato", "swiggy", "uber eats", "pizza", "burger", "coffee", "tea", "bakery", "dining"}},
		{Name: "Transportation", Keywords: []string{"uber", "ola", "taxi", "fuel", "petrol", "diesel", "metro", "bus", "train", "parking", "toll", "transport"}},
		{Name: "Utilities", Keywords: []string{"electricity", "water", "gas", "internet", "wifi", "phone", "mobile", "broadband", "utility", "bsnl", "airtel", "jio"}},
		{Name: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra", "shopping", "store", "mall", "clothing", "electronics", "fashion"}},
		{Name: "Entertainment", Keywords: []string{"movie", "cinema", "netflix", "prime", "spotify", "game", "entertainment", "streaming", "theatre"}},
		{Name: "Healthcare", Keywords: []string{"hospital", "clinic", "pharmacy", "medical", "doctor", "medicine", "health", "apollo", "pharma"}},
		{Name: "Education", Keywords: []string{"course", "tuition", "book", "education", "school", "college", "university", "learning"}},
		{Name: "Bills & Payments", Keywords: []string{"credit card", "loan", "emi", "subscription", "bill", "payment", "due", "recharge"}},
		{Name: "Travel", Keywords: []string{"hotel", "flight", "travel", "booking", "trip", "vacation", "holiday", "airbnb"}},
	}
}
