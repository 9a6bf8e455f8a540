package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is the raw result document returned by the search provider.
// Every field is optional; the provider guarantees nothing about which
// sections are present for a given query. Unmarshaling is tolerant: a
// section that fails to decode is dropped rather than failing the whole
// document, and list sections are decoded element-wise so a single
// malformed entry does not discard its siblings.
type Document struct {
	TopStories      []Item
	OrganicResults  []Item
	AnswerBox       *AnswerBox
	KnowledgeGraph  *KnowledgeGraph
	SportsResults   *SportsResults
	ShoppingResults []ShoppingItem
}

// Item is a single ranked hit (top story or organic result).
type Item struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Link    string `json:"link"`
}

// AnswerBox is a provider-supplied direct-answer block.
type AnswerBox struct {
	Title   string   `json:"title"`
	Answer  string   `json:"answer"`
	Snippet string   `json:"snippet"`
	List    []string `json:"list"`
}

// Empty reports whether the answer box carries no usable content.
// A nil receiver is empty.
func (a *AnswerBox) Empty() bool {
	return a == nil || (a.Title == "" && a.Answer == "" && a.Snippet == "" && len(a.List) == 0)
}

// Attribute is a single knowledge graph attribute. Attributes keep the
// order they appear in the provider document so formatted output is
// deterministic for a given input.
type Attribute struct {
	Key   string
	Value string
}

// KnowledgeGraph is a provider-supplied entity panel.
type KnowledgeGraph struct {
	Title       string
	Description string
	Attributes  []Attribute
}

// SportsResults is the provider's sports block. The provider returns it
// either as an object with a title and a games list, or as a bare array
// of titled entries; both shapes are accepted.
type SportsResults struct {
	Title   string
	Games   []Game
	Entries []string // titles from the array shape
}

// Game is a single scored matchup inside an object-shaped sports block.
type Game struct {
	Teams  []string `json:"teams"`
	Scores []string `json:"scores"`
}

// ShoppingItem is a single shopping/price hit.
type ShoppingItem struct {
	Title  string `json:"title"`
	Price  string `json:"price"`
	Source string `json:"source"`
}

// UnmarshalJSON decodes a provider response. The top level must be a JSON
// object; beyond that, each known section is decoded independently and
// silently skipped on mismatch.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode result document: %w", err)
	}

	d.TopStories = decodeItems(raw["top_stories"])
	d.OrganicResults = decodeItems(raw["organic_results"])

	if msg, ok := raw["answer_box"]; ok {
		var box AnswerBox
		if json.Unmarshal(msg, &box) == nil {
			d.AnswerBox = &box
		}
	}
	if msg, ok := raw["knowledge_graph"]; ok {
		if kg := decodeKnowledgeGraph(msg); kg != nil {
			d.KnowledgeGraph = kg
		}
	}
	if msg, ok := raw["sports_results"]; ok {
		if sr := decodeSportsResults(msg); sr != nil {
			d.SportsResults = sr
		}
	}
	if msg, ok := raw["shopping_results"]; ok {
		var elems []json.RawMessage
		if json.Unmarshal(msg, &elems) == nil {
			for _, e := range elems {
				var item ShoppingItem
				if json.Unmarshal(e, &item) == nil {
					d.ShoppingResults = append(d.ShoppingResults, item)
				}
			}
		}
	}
	return nil
}

// Empty reports whether the document has nothing for a formatter to work
// with across top stories, organic results and the answer box.
func (d *Document) Empty() bool {
	if d == nil {
		return true
	}
	return len(d.TopStories) == 0 && len(d.OrganicResults) == 0 && d.AnswerBox.Empty()
}

func decodeItems(msg json.RawMessage) []Item {
	if len(msg) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if json.Unmarshal(msg, &elems) != nil {
		return nil
	}
	var items []Item
	for _, e := range elems {
		var item Item
		if json.Unmarshal(e, &item) == nil {
			items = append(items, item)
		}
	}
	return items
}

// decodeKnowledgeGraph parses the knowledge graph with attribute order
// preserved. encoding/json maps lose object order, so attributes are
// walked with a token decoder.
func decodeKnowledgeGraph(msg json.RawMessage) *KnowledgeGraph {
	var head struct {
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Attributes  json.RawMessage `json:"attributes"`
	}
	if json.Unmarshal(msg, &head) != nil {
		return nil
	}
	kg := &KnowledgeGraph{Title: head.Title, Description: head.Description}
	kg.Attributes = decodeOrderedAttrs(head.Attributes)
	return kg
}

func decodeOrderedAttrs(msg json.RawMessage) []Attribute {
	if len(msg) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(msg))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}
	var attrs []Attribute
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return attrs
		}
		key, _ := keyTok.(string)
		var val any
		if err := dec.Decode(&val); err != nil {
			return attrs
		}
		attrs = append(attrs, Attribute{Key: key, Value: stringify(val)})
	}
	return attrs
}

func decodeSportsResults(msg json.RawMessage) *SportsResults {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '{':
		// An empty block counts as absent; a populated one counts as
		// present even when no field is usable.
		var fields map[string]json.RawMessage
		if json.Unmarshal(trimmed, &fields) != nil || len(fields) == 0 {
			return nil
		}
		var obj struct {
			Title string `json:"title"`
			Games []Game `json:"games"`
		}
		if json.Unmarshal(trimmed, &obj) != nil {
			return nil
		}
		return &SportsResults{Title: obj.Title, Games: obj.Games}
	case '[':
		var elems []json.RawMessage
		if json.Unmarshal(trimmed, &elems) != nil || len(elems) == 0 {
			return nil
		}
		sr := &SportsResults{}
		for _, e := range elems {
			var entry struct {
				Title string `json:"title"`
			}
			if json.Unmarshal(e, &entry) == nil && entry.Title != "" {
				sr.Entries = append(sr.Entries, entry.Title)
			}
		}
		return sr
	default:
		return nil
	}
}

// stringify renders a decoded JSON value as display text. Whole numbers
// drop the float suffix ("1967", not "1967.000000").
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
