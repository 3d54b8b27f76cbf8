package parsing

import (
	"regexp"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

var companyLabel = regexp.MustCompile(`(?i)soci[eé]t[eé]|entreprise|client`)

// ExtractCompany reads the company name that follows a "Société" or
// "Client" style label.
func ExtractCompany(root dom.Node) string {
	if root == nil {
		return ""
	}
	for _, label := range root.Find("h2, h3, strong") {
		text := normalize.Text(label.Text())
		if text == "" || !companyLabel.MatchString(text) {
			continue
		}
		for sibling := label.NextSibling(); sibling != nil; sibling = sibling.NextSibling() {
			if value := normalize.Text(sibling.Text()); value != "" {
				return value
			}
		}
	}
	return ""
}
