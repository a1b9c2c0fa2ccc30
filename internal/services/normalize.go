package services

import (
	"strings"

	"readandlead/internal/models/response_models"
)

// categoryMap rewrites loose draft categories into the canonical vocabulary
// Kakao keyword search handles well. Ordered: the first key contained in the
// raw category wins.
var categoryMap = []struct {
	Key string
	Val string
}{
	{"음식", "한식당"},
	{"식당", "한식당"},
	{"현지 식당", "한식당"},
	{"맛집", "한식당"},
	{"주점", "막걸리집"},
	{"술집", "막걸리집"},
	{"막걸리", "막걸리집"},
	{"분식집", "분식"},
	{"문학", "문학관"},
	{"전시", "전시관"},
	{"박물관", "박물관"},
	{"도서관", "도서관"},
	{"서점", "서점"},
	{"공원", "공원"},
	{"한옥", "한옥"},
	{"전망", "전망대"},
	{"산책", "공원"},
	{"카페", "카페"},
	{"빵", "빵집"},
	{"성당", "성당"},
	{"시장", "시장"},
}

var canonicalCategories = map[string]struct{}{
	"문학관": {}, "박물관": {}, "전시관": {}, "도서관": {}, "서점": {}, "시장": {},
	"성당": {}, "한옥": {}, "공원": {}, "전망대": {}, "카페": {}, "빵집": {},
	"한식당": {}, "분식": {}, "막걸리집": {}, "양식": {}, "중식": {}, "일식": {},
}

// keywordBanlist drops filler words that poison keyword search precision.
var keywordBanlist = []string{"근처", "인근", "유명", "핫플", "추천", "가까운", "최고", "베스트", "좋은", "멋진"}

// NormalizeCategory maps a raw category onto the canonical vocabulary.
// Returns "" when the input carries no usable category.
func NormalizeCategory(cat string) string {
	c := strings.ToLower(strings.TrimSpace(cat))
	if c == "" {
		return ""
	}
	for _, entry := range categoryMap {
		if strings.Contains(c, entry.Key) {
			return entry.Val
		}
	}
	if _, ok := canonicalCategories[c]; ok {
		return c
	}
	return ""
}

// NormalizeKeywords trims, drops banlisted words, dedups case-insensitively
// keeping first occurrence, and caps the list at three entries.
func NormalizeKeywords(kws []string) []string {
	cleaned := make([]string, 0, len(kws))
	for _, w := range kws {
		ww := strings.TrimSpace(w)
		if ww == "" {
			continue
		}
		banned := false
		for _, bad := range keywordBanlist {
			if strings.Contains(ww, bad) {
				banned = true
				break
			}
		}
		if banned {
			continue
		}
		cleaned = append(cleaned, ww)
	}

	dedup := make([]string, 0, len(cleaned))
	seen := make(map[string]struct{}, len(cleaned))
	for _, w := range cleaned {
		lw := strings.ToLower(w)
		if _, ok := seen[lw]; ok {
			continue
		}
		seen[lw] = struct{}{}
		dedup = append(dedup, w)
	}
	if len(dedup) > 3 {
		dedup = dedup[:3]
	}
	return dedup
}

// NormalizePlaceQuery fills the city from hints when the draft left it empty,
// widens bare 서울 to 서울 종로구, normalizes the category (deriving one from
// the stop title if needed, defaulting to 공원), and always re-asserts
// must_be_real.
func NormalizePlaceQuery(pq response_models.PlaceQuery) response_models.PlaceQuery {
	city := strings.TrimSpace(pq.City)

	if city == "" {
		if c := GuessCityFromBook(pq.GlobalHint, pq.ThemeHint, pq.TitleHint); c != "" {
			city = c
		} else if c := GuessCityFromText(pq.TitleHint); c != "" {
			city = c
		} else if c := GuessCityFromText(pq.ThemeHint); c != "" {
			city = c
		} else if c := GuessCityFromText(pq.GlobalHint); c != "" {
			city = c
		}
	}

	if city == "서울" {
		city = "서울 종로구"
	}

	cat := NormalizeCategory(pq.Category)
	if cat == "" {
		cat = NormalizeCategory(strings.ToLower(pq.TitleHint))
	}
	if cat == "" {
		cat = "공원"
	}

	return response_models.PlaceQuery{
		City:       city,
		Category:   cat,
		Keywords:   NormalizeKeywords(pq.Keywords),
		MustBeReal: true,

		TitleHint:  pq.TitleHint,
		ThemeHint:  pq.ThemeHint,
		GlobalHint: pq.GlobalHint,
	}
}
