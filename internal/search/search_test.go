package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-translator/pkg/types"
)

func testCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 3,
	}
}

// --- Query ---

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"single term", []string{"transformer"}, []string{"transformer"}},
		{"multiple terms", []string{"llm", "agents"}, []string{"llm", "agents"}},
		{"trims whitespace", []string{"  attention  "}, []string{"attention"}},
		{"drops blanks", []string{"a", "", "   ", "b"}, []string{"a", "b"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQuery(tt.terms)
			if len(got.Terms) != len(tt.want) {
				t.Fatalf("len(Terms) = %d, want %d", len(got.Terms), len(tt.want))
			}
			for i := range tt.want {
				if got.Terms[i] != tt.want[i] {
					t.Errorf("Terms[%d] = %q, want %q", i, got.Terms[i], tt.want[i])
				}
			}
		})
	}
}

func TestQueryIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  bool
	}{
		{"nil", nil, true},
		{"blank only", []string{"  ", ""}, true},
		{"one term", []string{"transformer"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewQuery(tt.terms).IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryString(t *testing.T) {
	q := NewQuery([]string{"quantum computing", "error correction"})
	want := "quantum computing error correction"
	if got := q.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQueryExpression(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  string
	}{
		{"single term", []string{"transformer"}, "(transformer)"},
		{"two terms", []string{"llm", "agents"}, "(llm) AND (agents)"},
		{"multi-word term stays grouped", []string{"quantum computing", "error"}, "(quantum computing) AND (error)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewQuery(tt.terms).Expression(); got != tt.want {
				t.Errorf("Expression() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- arXiv backend ---

const sampleArxivSearchXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v1</id>
    <title>Attention Is All You Need</title>
    <summary>We propose a new architecture based solely on attention mechanisms.</summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1810.04805v2</id>
    <title>BERT: Pre-training of Deep Bidirectional Transformers</title>
    <summary>We introduce BERT.</summary>
    <published>2018-10-11T00:00:00Z</published>
    <author><name>Jacob Devlin</name></author>
  </entry>
</feed>`

func TestArxivBackendSearch(t *testing.T) {
	var gotQuery, gotSort, gotMax string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		gotSort = r.URL.Query().Get("sortBy")
		gotMax = r.URL.Query().Get("max_results")
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, sampleArxivSearchXML)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	b := &ArxivBackend{Client: ts.Client()}
	papers, err := b.Search(context.Background(), NewQuery([]string{"attention"}), testCfg())
	if err != nil {
		t.Fatalf("ArxivBackend.Search: %v", err)
	}

	if gotQuery != "(attention)" {
		t.Errorf("search_query = %q, want %q", gotQuery, "(attention)")
	}
	if gotSort != "relevance" {
		t.Errorf("sortBy = %q, want %q", gotSort, "relevance")
	}
	if gotMax != "3" {
		t.Errorf("max_results = %q, want %q", gotMax, "3")
	}

	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}

	p := papers[0]
	if p.ID != "1706.03762" {
		t.Errorf("ID = %q, want %q", p.ID, "1706.03762")
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.URL != "http://arxiv.org/abs/1706.03762v1" {
		t.Errorf("URL = %q", p.URL)
	}
	if p.Abstract != "We propose a new architecture based solely on attention mechanisms." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if len(p.Authors) != 2 {
		t.Errorf("len(Authors) = %d, want 2", len(p.Authors))
	}
	if p.Published.Year() != 2017 {
		t.Errorf("Published = %v", p.Published)
	}

	// Feed order is preserved.
	if papers[1].ID != "1810.04805" {
		t.Errorf("papers[1].ID = %q, want %q", papers[1].ID, "1810.04805")
	}
}

func TestArxivBackendEmptyQuery(t *testing.T) {
	b := &ArxivBackend{Client: http.DefaultClient}
	_, err := b.Search(context.Background(), Query{}, testCfg())
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected empty query error, got: %v", err)
	}
}

func TestArxivBackendHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	b := &ArxivBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), NewQuery([]string{"attention"}), testCfg())
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("expected HTTP 503 error, got: %v", err)
	}
}

func TestArxivBackendMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not XML")
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	b := &ArxivBackend{Client: ts.Client()}
	_, err := b.Search(context.Background(), NewQuery([]string{"attention"}), testCfg())
	if err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"http://arxiv.org/abs/1706.03762v5", "1706.03762"},
		{"http://arxiv.org/abs/2301.12345", "2301.12345"},
		{"https://arxiv.org/abs/2301.07041v2", "2301.07041"},
		{"not a url", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := extractArxivID(tt.input)
			if got != tt.want {
				t.Errorf("extractArxivID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
