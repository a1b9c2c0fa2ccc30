package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	wikiSearchAPI  = "https://ko.wikipedia.org/w/api.php"
	wikiSummaryAPI = "https://ko.wikipedia.org/api/rest_v1/page/summary/"
	googleBooksAPI = "https://www.googleapis.com/books/v1/volumes"
)

// BookContextClient collects Korean Wikipedia and Google Books material
// about a book title to ground the itinerary draft. Every lookup failure
// degrades to an empty section.
type BookContextClient struct {
	httpc *http.Client
}

func NewBookContextClient() BookContextClientInterface {
	return &BookContextClient{httpc: newHTTPClient(6 * time.Second)}
}

func (b *BookContextClient) FetchBookContext(ctx context.Context, title string) string {
	var sections []string
	if wiki := b.wikiSummary(ctx, title); wiki != "" {
		sections = append(sections, "[Wikipedia-KO]\n"+wiki)
	}
	if gbooks := b.googleBooksBrief(ctx, title); gbooks != "" {
		sections = append(sections, "[GoogleBooks]\n"+gbooks)
	}
	return strings.Join(sections, "\n\n")
}

func (b *BookContextClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := b.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (b *BookContextClient) wikiSummary(ctx context.Context, title string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", title)
	params.Set("format", "json")
	params.Set("utf8", "1")
	params.Set("srlimit", "1")

	var search struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := b.getJSON(ctx, wikiSearchAPI+"?"+params.Encode(), &search); err != nil {
		return ""
	}
	if len(search.Query.Search) == 0 {
		return ""
	}

	var summary struct {
		Extract string `json:"extract"`
	}
	page := url.PathEscape(search.Query.Search[0].Title)
	if err := b.getJSON(ctx, wikiSummaryAPI+page, &summary); err != nil {
		return ""
	}
	return summary.Extract
}

func (b *BookContextClient) googleBooksBrief(ctx context.Context, title string) string {
	params := url.Values{}
	params.Set("q", title)
	params.Set("maxResults", "3")
	params.Set("langRestrict", "ko")

	var result struct {
		Items []struct {
			VolumeInfo struct {
				Description string   `json:"description"`
				Categories  []string `json:"categories"`
				Authors     []string `json:"authors"`
			} `json:"volumeInfo"`
		} `json:"items"`
	}
	if err := b.getJSON(ctx, googleBooksAPI+"?"+params.Encode(), &result); err != nil {
		return ""
	}
	if len(result.Items) == 0 {
		return ""
	}

	vol := result.Items[0].VolumeInfo
	var parts []string
	if len(vol.Authors) > 0 {
		parts = append(parts, "저자: "+strings.Join(vol.Authors, ", "))
	}
	if len(vol.Categories) > 0 {
		parts = append(parts, "분류: "+strings.Join(vol.Categories, ", "))
	}
	if vol.Description != "" {
		parts = append(parts, "개요: "+vol.Description)
	}
	return truncateRunes(strings.Join(parts, " / "), 1200)
}

// truncateRunes caps s at max characters, never splitting a rune. Korean
// text is three bytes per rune, so a byte cap would cut mid-character.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// backgroundCues are the place-name tokens scanned out of book context text
// to seed the draft prompt's background-hint section.
var backgroundCues = []string{
	"서울", "종로", "중구", "마포", "영등포", "을지로", "청계천", "세운상가", "남산", "남산타워",
	"한강", "전주", "부산", "춘천", "하동", "광주", "대전", "대구", "인천", "울산", "제주",
}

// ExtractBackgroundHints picks known city/district/landmark words out of the
// fetched context, deduplicated in first-seen order.
func ExtractBackgroundHints(text string) string {
	if text == "" {
		return ""
	}
	var out []string
	seen := map[string]bool{}
	for _, cue := range backgroundCues {
		if strings.Contains(text, cue) && !seen[cue] {
			seen[cue] = true
			out = append(out, cue)
		}
	}
	return truncateRunes(strings.Join(out, ", "), 200)
}
