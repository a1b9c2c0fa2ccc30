package services

import (
	"fmt"

	"readandlead/internal/models/response_models"
	"readandlead/pkg/clients"
)

// fallbackPlan builds the static Seoul template used when drafting fails.
// Every stop still carries a place_query so the resolver can attach real
// places to it exactly like a model draft.
func fallbackPlan(in clients.PlanInput) response_models.TravelPlan {
	days := make([]response_models.DayPlan, 0, in.Days)
	for d := 1; d <= in.Days; d++ {
		days = append(days, response_models.DayPlan{
			Day:   d,
			Theme: fmt.Sprintf("%s 테마 Day %d", in.Theme, d),
			Stops: []response_models.StopItem{
				{
					Time:    "09:30",
					Title:   fmt.Sprintf("%s 배경지 산책 (청계천/세운상가 등)", in.BookTitle),
					Notes:   "책 속 배경과 연결된 장소",
					Mission: "청계천 벽화/안내판 인증샷 → 도장",
					PlaceQuery: &response_models.PlaceQuery{
						City: "서울 종로구", Category: "공원",
						Keywords: []string{"청계천", "산책로"}, MustBeReal: true,
					},
				},
				{
					Time:    "12:30",
					Title:   "현지 식당 점심 (을지로/종로)",
					Notes:   "책 속 음식과 연계",
					Mission: "책 등장 음식 주문/사진 인증 → 리워드",
					PlaceQuery: &response_models.PlaceQuery{
						City: "서울 종로구", Category: "한식당",
						Keywords: []string{"을지로", "전통"}, MustBeReal: true,
					},
				},
				{
					Time:    "15:00",
					Title:   "문학/도시사 전시",
					Notes:   "작가/작품/도시 재개발 역사 전시 관람",
					Mission: "마음에 남는 설명문/구절 촬영·요약 업로드",
					PlaceQuery: &response_models.PlaceQuery{
						City: "서울 중구", Category: "전시관",
						Keywords: []string{"세운상가", "을지로"}, MustBeReal: true,
					},
				},
				{
					Time:    "19:00",
					Title:   "남산타워/한강 야경",
					Notes:   "하루 마무리 산책",
					Mission: "야경 인증샷 + '내 작은 공' 한 줄 소감",
					PlaceQuery: &response_models.PlaceQuery{
						City: "서울 용산구", Category: "전망대",
						Keywords: []string{"남산타워", "야경"}, MustBeReal: true,
					},
				},
			},
		})
	}
	return response_models.TravelPlan{
		Summary: fmt.Sprintf("'%s' 기반 %d일 %s 여행(실제 장소는 Kakao Places로 확정).", in.BookTitle, in.Days, in.Theme),
		Days:    days,
	}
}
