package provider

import "strings"

const DefaultCuisine = "Various"

type CuisineRule struct {
	Keyword string
	Cuisine string
}

var DefaultCuisineRules = []CuisineRule{
	{Keyword: "pizz", Cuisine: "Italian"},
	{Keyword: "пицц", Cuisine: "Italian"},
	{Keyword: "italian", Cuisine: "Italian"},
	{Keyword: "итальян", Cuisine: "Italian"},
	{Keyword: "sushi", Cuisine: "Japanese"},
	{Keyword: "суши", Cuisine: "Japanese"},
	{Keyword: "japanese", Cuisine: "Japanese"},
	{Keyword: "япон", Cuisine: "Japanese"},
	{Keyword: "burger", Cuisine: "American"},
	{Keyword: "бургер", Cuisine: "American"},
	{Keyword: "american", Cuisine: "American"},
	{Keyword: "американ", Cuisine: "American"},
	{Keyword: "fast food", Cuisine: "Fast Food"},
	{Keyword: "быстрое питание", Cuisine: "Fast Food"},
	{Keyword: "georgian", Cuisine: "Georgian"},
	{Keyword: "грузин", Cuisine: "Georgian"},
	{Keyword: "chinese", Cuisine: "Chinese"},
	{Keyword: "китай", Cuisine: "Chinese"},
	{Keyword: "asian", Cuisine: "Asian"},
	{Keyword: "азиат", Cuisine: "Asian"},
	{Keyword: "mexican", Cuisine: "Mexican"},
	{Keyword: "мексикан", Cuisine: "Mexican"},
	{Keyword: "steak", Cuisine: "Steakhouse"},
	{Keyword: "стейк", Cuisine: "Steakhouse"},
	{Keyword: "russian", Cuisine: "Russian"},
	{Keyword: "русск", Cuisine: "Russian"},
	{Keyword: "bakery", Cuisine: "Bakery"},
	{Keyword: "пекарн", Cuisine: "Bakery"},
	{Keyword: "кондитер", Cuisine: "Bakery"},
	{Keyword: "coffee", Cuisine: "Cafe"},
	{Keyword: "кофе", Cuisine: "Cafe"},
	{Keyword: "cafe", Cuisine: "Cafe"},
	{Keyword: "кафе", Cuisine: "Cafe"},
}

type CuisineClassifier struct {
	rules []CuisineRule
}

func NewCuisineClassifier(rules []CuisineRule) *CuisineClassifier {
	if rules == nil {
		rules = DefaultCuisineRules
	}
	return &CuisineClassifier{rules: rules}
}

// Classify walks the labels in the order given and returns the cuisine of the
// first rule whose keyword occurs in a label.
func (c *CuisineClassifier) Classify(labels []string) string {
	for _, label := range labels {
		lowered := strings.ToLower(label)
		for _, rule := range c.rules {
			if strings.Contains(lowered, rule.Keyword) {
				return rule.Cuisine
			}
		}
	}
	return DefaultCuisine
}
