package brandcontext

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Acme Living</title>
<meta name="description" content="Practical home advice from people who test everything.">
</head>
<body>
<h1>Calm, organized living</h1>
<h2>Our approach</h2>
<script>var tracking = "ignore me";</script>
<p>Organization organization organization storage storage shelves.</p>
</body>
</html>`

func TestExtractSignals_PullsTitleHeadingsDescription(t *testing.T) {
	signals := ExtractSignals(sampleHTML)

	assert.Equal(t, []string{"Acme Living"}, signals.Titles)
	assert.Equal(t, []string{"Calm, organized living", "Our approach"}, signals.Headings)
	assert.Equal(t, []string{"Practical home advice from people who test everything."}, signals.Descriptions)
}

func TestExtractSignals_PositioningSnippetsFromHeadingsAndDescriptions(t *testing.T) {
	signals := ExtractSignals(sampleHTML)

	assert.Contains(t, signals.PositioningSnippets, "Calm, organized living")
	assert.Contains(t, signals.PositioningSnippets, "Practical home advice from people who test everything.")
}

func TestExtractSignals_KeyTermsByFrequency(t *testing.T) {
	signals := ExtractSignals(sampleHTML)

	assert.NotEmpty(t, signals.KeyTerms)
	assert.Equal(t, "organization", signals.KeyTerms[0])
	assert.NotContains(t, signals.KeyTerms, "tracking")
}

func TestExtractSignals_StopWordsExcluded(t *testing.T) {
	signals := ExtractSignals("the and for with that this you your the the the widget widget")
	assert.Equal(t, []string{"widget"}, signals.KeyTerms)
}

func TestExtractSignals_PlainTextDegradesToTermsOnly(t *testing.T) {
	signals := ExtractSignals("shelving systems beat drawer dividers for deep closets shelving shelving")

	assert.Empty(t, signals.Titles)
	assert.Empty(t, signals.Headings)
	assert.Equal(t, "shelving", signals.KeyTerms[0])
}

func TestExtractSignals_PerSourceCaps(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 40; i++ {
		sb.WriteString(fmt.Sprintf("<h2>Heading number %d</h2>", i))
	}
	sb.WriteString("</body></html>")

	signals := ExtractSignals(sb.String())
	assert.Len(t, signals.Headings, maxHeadingsPerSource)
}

func TestTopTerms_TieBrokenByFirstOccurrence(t *testing.T) {
	terms := topTerms("alpha bravo alpha bravo charlie", 10)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, terms)
}
