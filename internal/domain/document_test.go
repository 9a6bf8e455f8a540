package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentUnmarshalFullResponse(t *testing.T) {
	raw := `{
		"top_stories": [{"title": "T1", "snippet": "S1", "source": "Src", "date": "1 hour ago", "link": "https://a"}],
		"organic_results": [{"title": "T2", "snippet": "S2", "link": "https://b"}],
		"answer_box": {"title": "Answer", "answer": "42"},
		"knowledge_graph": {"title": "Entity", "description": "Desc", "attributes": {"Founded": 1967, "CEO": "Someone"}},
		"shopping_results": [{"title": "Widget", "price": "$9.99", "source": "Shop"}]
	}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.TopStories, 1)
	assert.Equal(t, "T1", doc.TopStories[0].Title)
	require.Len(t, doc.OrganicResults, 1)
	require.NotNil(t, doc.AnswerBox)
	assert.Equal(t, "42", doc.AnswerBox.Answer)
	require.NotNil(t, doc.KnowledgeGraph)
	require.Len(t, doc.ShoppingResults, 1)
}

func TestDocumentUnmarshalMalformedSectionIsDropped(t *testing.T) {
	raw := `{
		"organic_results": [{"title": "ok", "snippet": "s"}],
		"answer_box": "not an object",
		"knowledge_graph": 12
	}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Len(t, doc.OrganicResults, 1)
	assert.Nil(t, doc.AnswerBox)
	assert.Nil(t, doc.KnowledgeGraph)
}

func TestDocumentUnmarshalMalformedListElementIsSkipped(t *testing.T) {
	raw := `{"organic_results": [{"title": "a", "snippet": "s"}, "bogus", {"title": "b", "snippet": "s2"}]}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.OrganicResults, 2)
	assert.Equal(t, "a", doc.OrganicResults[0].Title)
	assert.Equal(t, "b", doc.OrganicResults[1].Title)
}

func TestDocumentUnmarshalNonObjectFails(t *testing.T) {
	var doc Document
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &doc))
}

func TestKnowledgeGraphAttributesPreserveOrder(t *testing.T) {
	raw := `{"knowledge_graph": {"title": "E", "attributes": {"z": "last?", "a": "first?", "m": "middle?"}}}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.NotNil(t, doc.KnowledgeGraph)
	keys := make([]string, 0, 3)
	for _, attr := range doc.KnowledgeGraph.Attributes {
		keys = append(keys, attr.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestKnowledgeGraphAttributeValueStringify(t *testing.T) {
	raw := `{"knowledge_graph": {"title": "E", "attributes": {"year": 1967, "rate": 3.5, "active": true, "gone": null}}}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	want := map[string]string{"year": "1967", "rate": "3.5", "active": "true", "gone": ""}
	for _, attr := range doc.KnowledgeGraph.Attributes {
		assert.Equal(t, want[attr.Key], attr.Value, "attribute %q", attr.Key)
	}
}

func TestSportsResultsObjectShape(t *testing.T) {
	raw := `{"sports_results": {"title": "Premier League", "games": [{"teams": ["A", "B"], "scores": ["2", "1"]}]}}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.NotNil(t, doc.SportsResults)
	assert.Equal(t, "Premier League", doc.SportsResults.Title)
	require.Len(t, doc.SportsResults.Games, 1)
	assert.Equal(t, []string{"A", "B"}, doc.SportsResults.Games[0].Teams)
}

func TestSportsResultsArrayShape(t *testing.T) {
	raw := `{"sports_results": [{"title": "Game one"}, {"no_title": true}, {"title": "Game two"}]}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.NotNil(t, doc.SportsResults)
	assert.Equal(t, []string{"Game one", "Game two"}, doc.SportsResults.Entries)
}

func TestSportsResultsEmptyBlockIsAbsent(t *testing.T) {
	for _, raw := range []string{
		`{"sports_results": {}}`,
		`{"sports_results": []}`,
		`{"sports_results": { }}`,
	} {
		var doc Document
		require.NoError(t, json.Unmarshal([]byte(raw), &doc))
		assert.Nil(t, doc.SportsResults, "input %s", raw)
	}

	// A populated object without usable fields still counts as present.
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"sports_results": {"rankings": []}}`), &doc))
	assert.NotNil(t, doc.SportsResults)
}

func TestAnswerBoxEmpty(t *testing.T) {
	var nilBox *AnswerBox
	assert.True(t, nilBox.Empty())
	assert.True(t, (&AnswerBox{}).Empty())
	assert.False(t, (&AnswerBox{Answer: "yes"}).Empty())
	assert.False(t, (&AnswerBox{List: []string{"x"}}).Empty())
}

func TestDocumentEmpty(t *testing.T) {
	var nilDoc *Document
	assert.True(t, nilDoc.Empty())
	assert.True(t, (&Document{}).Empty())
	assert.True(t, (&Document{AnswerBox: &AnswerBox{}}).Empty())
	assert.False(t, (&Document{OrganicResults: []Item{{Title: "t"}}}).Empty())
	assert.False(t, (&Document{AnswerBox: &AnswerBox{Snippet: "s"}}).Empty())

	// Knowledge graph alone does not make a document non-empty.
	assert.True(t, (&Document{KnowledgeGraph: &KnowledgeGraph{Title: "E"}}).Empty())
}

func TestNewSearchResultRequiresTitleAndSnippet(t *testing.T) {
	_, ok := NewSearchResult("", "snippet", "", "", "", IntentNews, nil)
	assert.False(t, ok)
	_, ok = NewSearchResult("title", "", "", "", "", IntentNews, nil)
	assert.False(t, ok)
	r, ok := NewSearchResult("title", "snippet", "src", "today", "https://x", IntentNews, map[string]any{"is_top": true})
	assert.True(t, ok)
	assert.True(t, r.IsTop())
}
