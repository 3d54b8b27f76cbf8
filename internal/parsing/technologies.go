package parsing

import (
	"regexp"

	"github.com/JeyZu/FreelanceFinder/internal/normalize"
)

func tech(label, pattern string) labelled {
	return labelled{label: label, pattern: regexp.MustCompile(`(?i)` + pattern)}
}

var technologyPatterns = []labelled{
	tech("Node.js", `node\.?js`),
	tech("React", `react`),
	tech("TypeScript", `typescript|ts\b`),
	tech("JavaScript", `javascript`),
	tech("AWS", `\baws\b`),
	tech("Azure", `azure`),
	tech("GCP", `\bgoogle cloud|\bgcp\b`),
	tech("Kubernetes", `kubernetes|k8s`),
	tech("Docker", `docker`),
	tech("Terraform", `terraform`),
	tech("Java", `\bjava\b`),
	tech("Spring", `spring\b`),
	tech("Python", `python`),
	tech("Django", `django`),
	tech("Flask", `flask`),
	tech("PHP", `\bphp\b`),
	tech("Symfony", `symfony`),
	tech("Laravel", `laravel`),
	tech("Go", `\bgo\b|golang`),
	tech("Rust", `rust`),
	tech("C#", `c#`),
	tech("C++", `c\+\+`),
	tech("Ruby", `ruby`),
	tech("Rails", `rails`),
	tech("Scala", `scala`),
	tech("Swift", `swift`),
	tech("Kotlin", `kotlin`),
	tech("Android", `android`),
	tech("iOS", `\bios\b`),
	tech("Angular", `angular`),
	tech("Vue", `vue\.js|vuejs|\bvue\b`),
	tech("Svelte", `svelte`),
	tech("GraphQL", `graphql`),
	tech("PostgreSQL", `postgresql|postgres`),
	tech("MySQL", `mysql`),
	tech("MongoDB", `mongodb`),
	tech("Redis", `redis`),
	tech("Kafka", `kafka`),
	tech("Spark", `spark`),
	tech("Hadoop", `hadoop`),
	tech("Elasticsearch", `elasticsearch|elastic`),
}

// DetectTechnologies adds to stack the canonical label of every technology
// mentioned in texts. Texts are scanned in order, labels in table order.
func DetectTechnologies(texts []string, stack *normalize.OrderedSet) {
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, tech := range technologyPatterns {
			if tech.pattern.MatchString(text) {
				stack.Add(tech.label)
			}
		}
	}
}
