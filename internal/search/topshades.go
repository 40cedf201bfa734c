package search

// topShadePhrases maps the popular shade levels 1..10 to the canonical
// phrases the catalog uses for them. A short numeric query that hits
// this table also matches entries carrying the phrase even when the
// bare number is absent from the name.
var topShadePhrases = map[int][]string{
	1:  {"1.0", "черный"},
	3:  {"3.0", "темный шатен"},
	4:  {"4.0", "шатен"},
	5:  {"5.0", "светлый шатен"},
	6:  {"6.0", "темный блондин"},
	7:  {"7.0", "русый"},
	8:  {"8.0", "светлый блондин"},
	9:  {"9.0", "очень светлый блондин"},
	10: {"10.0", "платиновый блондин"},
}
