package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/models/response_models"
	"readandlead/internal/services"
)

// TestGuessCityFromBook_GazetteerMarker verifies that book-world markers map
// to their administrative areas, including title-level markers like 동백꽃.
func TestGuessCityFromBook_GazetteerMarker(t *testing.T) {
	assert.Equal(t, "강원 춘천시", services.GuessCityFromBook("동백꽃", "", ""))
	assert.Equal(t, "서울 마포구", services.GuessCityFromBook("", "", "망원동 골목 산책"))
	assert.Equal(t, "경남 하동군", services.GuessCityFromBook("토지", "평사리 들판", ""))
	assert.Equal(t, "부산", services.GuessCityFromBook("부산에서 보낸 여름", "", ""))
}

// TestGuessCityFromBook_BareCityWord verifies the regex fallback and its
// district-level disambiguation for words too broad to search on directly.
func TestGuessCityFromBook_BareCityWord(t *testing.T) {
	assert.Equal(t, "강원 춘천시", services.GuessCityFromBook("춘천 가는 기차", "", ""))
	assert.Equal(t, "서울 마포구", services.GuessCityFromBook("마포의 밤", "", ""))
	assert.Equal(t, "제주", services.GuessCityFromBook("제주에서의 하루", "", ""))
	assert.Equal(t, "", services.GuessCityFromBook("어느 소도시 이야기", "", ""))
}

// TestGuessCityFromText verifies address-shaped fragment extraction.
func TestGuessCityFromText(t *testing.T) {
	assert.Equal(t, "서울 종로구", services.GuessCityFromText("서울 종로구 일대를 걷는다"))
	assert.Equal(t, "전주시 완산구", services.GuessCityFromText("전주시 완산구 한옥마을"))
	assert.Equal(t, "", services.GuessCityFromText("아무 주소도 없는 문장"))
}

// TestNormalizeCategory verifies loose categories collapse onto the canonical
// vocabulary and that canonical values pass through unchanged.
func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "한식당", services.NormalizeCategory("현지 맛집"))
	assert.Equal(t, "문학관", services.NormalizeCategory("문학 기행"))
	assert.Equal(t, "막걸리집", services.NormalizeCategory("막걸리 양조장"))
	assert.Equal(t, "공원", services.NormalizeCategory("산책로"))
	assert.Equal(t, "카페", services.NormalizeCategory("카페"))
	assert.Equal(t, "", services.NormalizeCategory("우주정거장"))
	assert.Equal(t, "", services.NormalizeCategory(""))
}

// TestNormalizeKeywords verifies banlist filtering, case-insensitive dedup
// that keeps the first spelling, and the three-keyword cap.
func TestNormalizeKeywords(t *testing.T) {
	got := services.NormalizeKeywords([]string{
		"청계천", " 근처 맛집 ", "Cheonggyecheon", "cheonggyecheon", "세운상가", "남산타워", "한강",
	})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"청계천", "Cheonggyecheon", "세운상가"}, got)

	assert.Empty(t, services.NormalizeKeywords(nil))
	assert.Empty(t, services.NormalizeKeywords([]string{"  ", "추천 코스"}))
}

// TestNormalizePlaceQuery_FillsCityFromHints verifies that an empty city is
// filled from the injected hints, a bare 서울 widens to 종로구, and the
// category defaults through the title hint down to 공원.
func TestNormalizePlaceQuery_FillsCityFromHints(t *testing.T) {
	pq := services.NormalizePlaceQuery(response_models.PlaceQuery{
		GlobalHint: "동백꽃",
		TitleHint:  "점순이네 마을 걷기",
	})
	assert.Equal(t, "강원 춘천시", pq.City)
	assert.Equal(t, "공원", pq.Category)
	assert.True(t, pq.MustBeReal)

	pq = services.NormalizePlaceQuery(response_models.PlaceQuery{City: "서울"})
	assert.Equal(t, "서울 종로구", pq.City)

	pq = services.NormalizePlaceQuery(response_models.PlaceQuery{
		Category:  "이상한 유형",
		TitleHint: "시장 구경",
	})
	assert.Equal(t, "시장", pq.Category)
}

// TestNormalizePlaceQuery_KeepsExplicitCity verifies a draft-provided city is
// not overwritten by hints.
func TestNormalizePlaceQuery_KeepsExplicitCity(t *testing.T) {
	pq := services.NormalizePlaceQuery(response_models.PlaceQuery{
		City:       "전북 전주시",
		Category:   "한옥",
		GlobalHint: "동백꽃",
	})
	assert.Equal(t, "전북 전주시", pq.City)
	assert.Equal(t, "한옥", pq.Category)
}
