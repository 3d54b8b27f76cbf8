package parsing

import (
	"strings"
	"testing"

	"github.com/JeyZu/FreelanceFinder/internal/dom"
	"github.com/JeyZu/FreelanceFinder/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRoot(t *testing.T, source, selector string) dom.Node {
	t.Helper()
	doc, err := dom.ParseString(source)
	require.NoError(t, err)
	root := doc.FindFirst(selector)
	require.NotNil(t, root, "no element matches %q", selector)
	return root
}

func TestCollectMetaTexts(t *testing.T) {
	root := mustRoot(t, `<html><body><main>
<header><span>TJM 600 €/jour</span><span>Paris</span></header>
<ul><li>Freelance</li><li>Paris</li></ul>
<p>Intro</p>
<p>`+strings.Repeat("x", 141)+`</p>
</main></body></html>`, "main")

	assert.Equal(t, []string{"TJM 600 €/jour", "Paris", "Freelance", "Intro"}, CollectMetaTexts(root))
	assert.Empty(t, CollectMetaTexts(nil))
}

func TestFindByLabel(t *testing.T) {
	texts := []string{"Paris", "Démarrage : ASAP", "Durée 6 mois", "Début"}

	assert.Equal(t, "ASAP", FindStartDate(texts))
	assert.Equal(t, "6 mois", FindDuration(texts))
	assert.Equal(t, "Début", FindStartDate([]string{"Début"}))
	assert.Equal(t, "", FindDuration([]string{"Paris"}))
}

func TestFindExperienceAndPostedAt(t *testing.T) {
	texts := []string{"Paris", "5 ans d'expérience", "Publiée il y a 2 jours"}

	assert.Equal(t, "5 ans d'expérience", FindExperience(texts))
	assert.Equal(t, "Publiée il y a 2 jours", FindPostedAt(texts))
	assert.Equal(t, "Profil Senior", FindExperience([]string{"Profil Senior"}))
	assert.Equal(t, "", FindPostedAt([]string{"Paris"}))
}

func TestFindContractType(t *testing.T) {
	assert.Equal(t, "Freelance", FindContractType([]string{"CDI", "ou freelance"}))
	assert.Equal(t, "Stage", FindContractType([]string{"Stage de fin d'études"}))
	assert.Equal(t, "", FindContractType(nil))
}

func TestDetectTechnologies(t *testing.T) {
	stack := normalize.NewOrderedSet("Kafka")
	DetectTechnologies([]string{"Node.js et React sur AWS", "", "TypeScript"}, stack)
	assert.Equal(t, []string{"Kafka", "Node.js", "React", "AWS", "TypeScript"}, stack.Values())

	stack = normalize.NewOrderedSet()
	DetectTechnologies([]string{"Backend Golang, Postgres et k8s"}, stack)
	assert.Equal(t, []string{"Kubernetes", "Go", "PostgreSQL"}, stack.Values())
}

func TestMainHeading(t *testing.T) {
	root := mustRoot(t, `<html><body><main><h2>Second</h2><h1>First</h1></main></body></html>`, "main")
	require.NotNil(t, MainHeading(root))
	assert.Equal(t, "h1", MainHeading(root).Tag())

	root = mustRoot(t, `<html><body><main><h3>x</h3><h2>Only</h2></main></body></html>`, "main")
	assert.Equal(t, "Only", MainHeading(root).Text())

	root = mustRoot(t, `<html><body><main><p>none</p></main></body></html>`, "main")
	assert.Nil(t, MainHeading(root))
}

func TestExtractCompany(t *testing.T) {
	root := mustRoot(t, `<html><body><main>
<h3>Entreprise</h3><div> </div><p>ACME Conseil</p>
</main></body></html>`, "main")
	assert.Equal(t, "ACME Conseil", ExtractCompany(root))

	root = mustRoot(t, `<html><body><main><h3>Mission</h3><p>Build things</p></main></body></html>`, "main")
	assert.Equal(t, "", ExtractCompany(root))
}

func TestExtractDescriptionPrefersNamedSections(t *testing.T) {
	sidebar := strings.Repeat("b", 150)
	body := strings.Repeat("d", 100)
	root := mustRoot(t, `<html><body><main>
<div class="sidebar">`+sidebar+`</div>
<section class="job-description"><p>`+body+`</p></section>
</main></body></html>`, "main")

	assert.Equal(t, body, ExtractDescription(root))
}

func TestExtractDescriptionFallbackAndTruncation(t *testing.T) {
	text := strings.Repeat("f", 130)
	root := mustRoot(t, `<html><body><main><p>`+text+`</p></main></body></html>`, "main")
	assert.Equal(t, text, ExtractDescription(root))

	root = mustRoot(t, `<html><body><main><p>court</p></main></body></html>`, "main")
	assert.Equal(t, "", ExtractDescription(root))

	long := strings.Repeat("l", 1000)
	root = mustRoot(t, `<html><body><main><article>`+long+`</article></main></body></html>`, "main")
	got := ExtractDescription(root)
	assert.Equal(t, MaxDescriptionLength+1, normalize.Len(got))
	assert.True(t, strings.HasSuffix(got, normalize.Ellipsis))
}

func TestCollectTags(t *testing.T) {
	// Not the "class literally equals 'tag'" rule: class="tag" chips are kept
	// and only the bare word "tag" as text is dropped.
	root := mustRoot(t, `<html><body><main>
<ul class="tags"><li class="tag">React</li><li class="tag">Node.js</li><li class="tag">Tag</li></ul>
<div class="skills"><span class="tag">Go</span></div>
<span data-tag="aws">AWS</span>
<span class="tag">`+strings.Repeat("z", 41)+`</span>
</main></body></html>`, "main")

	assert.Equal(t, []string{"React", "Node.js", "Go", "AWS"}, CollectTags(root))
}

func TestSplitSegments(t *testing.T) {
	got := SplitSegments("Paris • 550 € / jour | Freelance, Remote; ")
	assert.Equal(t, []string{"Paris", "550 € / jour", "Freelance", "Remote"}, got)
	assert.Empty(t, SplitSegments(" ; "))
}

func TestCardSnippet(t *testing.T) {
	card := mustRoot(t, `<html><body><article><h3>Dev Go</h3><p>Paris</p></article></body></html>`, "article")
	assert.Equal(t, "Paris", CardSnippet(card, "Dev Go"))

	card = mustRoot(t, `<html><body><article><h3>Dev Go</h3></article></body></html>`, "article")
	assert.Equal(t, "Dev Go", CardSnippet(card, "Dev Go"))
}
