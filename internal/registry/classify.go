package registry

import (
	"sort"
	"strings"
)

// Category is one discovery bucket.
type Category struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tools []string `json:"tools"`
}

// CategoryOther collects names no rule matches.
const CategoryOther = "Other"

type categoryRule struct {
	label    string
	keywords []string
}

// Rules are checked in order; the first rule with a keyword contained in the
// tool name wins. "create_email_contact" is Contact Management.
var categoryRules = []categoryRule{
	{"Contact Management", []string{"contact"}},
	{"Messaging & Communication", []string{"message", "sms", "email", "conversation"}},
	{"Sales & Opportunities", []string{"opportunity", "pipeline"}},
	{"Calendar & Scheduling", []string{"calendar", "appointment", "event"}},
	{"Payments & Billing", []string{"payment", "invoice", "billing", "transaction"}},
	{"Marketing & Content", []string{"social", "blog", "media", "campaign"}},
	{"Business Operations", []string{"location", "workflow", "survey", "store"}},
	{"Custom Objects & Data", []string{"object", "custom", "field", "association"}},
}

// CategoryOf returns the label for a single tool name.
func CategoryOf(name string) string {
	name = strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.label
			}
		}
	}
	return CategoryOther
}

// CategoryLabels returns every label in rule order, Other last.
func CategoryLabels() []string {
	labels := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		labels = append(labels, rule.label)
	}
	return append(labels, CategoryOther)
}

// Classify partitions names into labelled buckets. Empty buckets are omitted,
// buckets keep label order and members are sorted.
func Classify(names []string) []Category {
	members := make(map[string][]string)
	for _, name := range names {
		label := CategoryOf(name)
		members[label] = append(members[label], name)
	}

	var out []Category
	for _, label := range CategoryLabels() {
		tools := members[label]
		if len(tools) == 0 {
			continue
		}
		sort.Strings(tools)
		out = append(out, Category{Name: label, Count: len(tools), Tools: tools})
	}
	return out
}
