package places

import (
	"context"
	"strings"
	"testing"
)

func TestSearchEmptyQuery(t *testing.T) {
	ss := NewStaticSearch()

	for _, q := range []string{"", "   "} {
		res, err := ss.Search(context.Background(), q, 5)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(res) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(res))
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	ss := NewStaticSearch()

	res, err := ss.Search(context.Background(), "LOKMAT", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) == 0 || res[0].Label != "Lokmat Square" {
		t.Errorf("got %+v, want Lokmat Square first", res)
	}
}

func TestSearchPrefixRanksFirst(t *testing.T) {
	ss := NewStaticSearch()

	res, err := ss.Search(context.Background(), "pune", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) < 2 {
		t.Fatalf("got %d results, want at least 2", len(res))
	}
	if !strings.HasPrefix(strings.ToLower(res[0].Label), "pune") {
		t.Errorf("first result %q is not a prefix match", res[0].Label)
	}
}

func TestSearchMatchesSubtitle(t *testing.T) {
	ss := NewStaticSearch()

	res, err := ss.Search(context.Background(), "nashik", 20)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) < 4 {
		t.Errorf("got %d results for a subtitle city, want several", len(res))
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	ss := NewStaticSearch()

	res, err := ss.Search(context.Background(), "a", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) > 3 {
		t.Errorf("got %d results, want at most 3", len(res))
	}

	res, err = ss.Search(context.Background(), "a", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) > DefaultLimit {
		t.Errorf("got %d results, want at most the default %d", len(res), DefaultLimit)
	}
}

func TestSearchNoMatch(t *testing.T) {
	ss := NewStaticSearch()

	res, err := ss.Search(context.Background(), "zzzzzz", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("got %d results, want 0", len(res))
	}
}
