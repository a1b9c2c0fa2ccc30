package services

import (
	"regexp"
	"strings"
)

// bookCityGazetteer maps book-world markers (neighborhoods, titles, regions)
// to the administrative area Kakao search responds best to. Order matters:
// earlier entries win when several markers appear in the same text.
var bookCityGazetteer = []struct {
	Key  string
	City string
}{
	{"망원동", "서울 마포구"},
	{"홍대", "서울 마포구"},
	{"종로", "서울 종로구"},
	{"동백꽃", "강원 춘천시"},
	{"평사리", "경남 하동군"},
	{"전주", "전북 전주시"},
	{"부산", "부산"},
}

var cityWordsRe = regexp.MustCompile(
	"서울|부산|대구|인천|광주|대전|울산|세종|제주|춘천|전주|하동|마포|종로|망원|홍대")

// addrPat picks up address-shaped fragments (city + district + dong) from
// free text, e.g. "서울 종로구" or "전주시 완산구".
var addrPat = regexp.MustCompile(
	`(서울|부산|대구|인천|광주|대전|울산|세종|제주)[^\s,]*(시|특별시|광역시)?\s*[가-힣0-9]*\s*(구|군|시|동)?` +
		`|[가-힣]+시\s*[가-힣]*구|[가-힣]+구\s*[가-힣]*동`)

// GuessCityFromBook scans the combined title and hints for a gazetteer marker
// first, then falls back to a bare city word with disambiguation to the
// district level where the bare word is too broad.
func GuessCityFromBook(bookTitle, themeHint, titleHint string) string {
	text := strings.Join([]string{bookTitle, themeHint, titleHint}, " ")
	for _, entry := range bookCityGazetteer {
		if strings.Contains(text, entry.Key) {
			return entry.City
		}
	}
	w := cityWordsRe.FindString(text)
	switch w {
	case "":
		return ""
	case "망원", "마포", "홍대":
		return "서울 마포구"
	case "종로":
		return "서울 종로구"
	case "춘천":
		return "강원 춘천시"
	}
	return w
}

// GuessCityFromText extracts the first address-shaped fragment from text.
func GuessCityFromText(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(addrPat.FindString(text))
}
