package parsing

import "regexp"

type labelled struct {
	label   string
	pattern *regexp.Regexp
}

// Earlier entries win: a text saying "Freelance ou CDI" is a freelance offer.
var contractPatterns = []labelled{
	{"Freelance", regexp.MustCompile(`(?i)freelance`)},
	{"CDI", regexp.MustCompile(`(?i)cdi`)},
	{"CDD", regexp.MustCompile(`(?i)cdd`)},
	{"Portage", regexp.MustCompile(`(?i)portage`)},
	{"Stage", regexp.MustCompile(`(?i)stage`)},
	{"Alternance", regexp.MustCompile(`(?i)alternance`)},
}

// FindContractType returns the first contract label any text mentions.
func FindContractType(texts []string) string {
	for _, contract := range contractPatterns {
		if firstMatch(texts, contract.pattern) != "" {
			return contract.label
		}
	}
	return ""
}
