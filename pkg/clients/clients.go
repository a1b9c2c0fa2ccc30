package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// PlanInput carries the itinerary request into the drafting boundary.
type PlanInput struct {
	BookTitle string
	Travelers int
	Days      int
	Theme     string
}

// PlaceCandidate is one hit from the places keyword search, already shaped
// for copying onto a stop.
type PlaceCandidate struct {
	Name    string
	Address string
	Lat     *float64
	Lng     *float64
	Phone   string
	URL     string
	Hours   string
	Source  string
	PlaceID string
}

// DraftClientInterface is the narrow language-model boundary: one prompt in,
// free text out. Implementations must not post-process beyond trimming.
type DraftClientInterface interface {
	DraftPlan(ctx context.Context, in PlanInput, bookContext, backgroundHints string) (string, error)
}

// PlacesClientInterface is the keyword-search boundary. city scopes the query
// when non-empty. An empty slice and an error are equivalent for callers.
type PlacesClientInterface interface {
	SearchKeyword(ctx context.Context, query, city string) ([]PlaceCandidate, error)
}

// BookContextClientInterface fetches background material about a book.
// It degrades to "" on any failure.
type BookContextClientInterface interface {
	FetchBookContext(ctx context.Context, title string) string
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// draftPromptTemplate asks the model for a place_query-only draft: real place
// names in titles and notes, but no invented addresses or coordinates, so the
// server can resolve every stop against the places search afterwards.
const draftPromptTemplate = `당신은 문학 여행 기획자이자 게이미피케이션 전문가입니다.
아래 책 정보를 먼저 '읽고', 책의 배경 지역(도시/구/핵심 지명)을 뽑아 경로를 설계하세요.
**실제 상호/주소/좌표는 쓰지 말고**, 각 stop마다 서버가 조회할 수 있도록 place_query만 작성합니다.
단, title/notes/mission에는 책과 직접 연결되는 **실제 지명**(예: 청계천, 세운상가, 남산타워, 한강대교 등)을 명시하세요.

[책 컨텍스트]
%s

[배경 후보 키워드]
%s

초안 JSON 스키마(정확히 이 구조로만 출력; 코드블록/설명 금지):
{
  "summary": "책과 여행을 연결한 요약(실제 지명 포함 권장)",
  "days": [
    {
      "day": 1,
      "theme": "테마",
      "stops": [
        {
          "time": "HH:MM",
          "title": "코스 제목(실제 지명 포함)",
          "place_query": {
            "city": "도시/행정구 (예: 서울 종로구 / 서울 중구 / 서울 마포구 / 전주 등)",
            "category": "장소 유형 (문학관/박물관/시장/카페/한식당/전망대/공원/산책로/다리…)",
            "keywords": ["인접 랜드마크", "구역", "동선 힌트(예: 청계천 벽화, 세운상가, 남산타워, 한강대교)"],
            "must_be_real": true
          },
          "notes": "책 속 장면과 실제 지명 연결 설명",
          "mission": "실제 지명 포함 인증 미션(사진/영상/SNS/리워드)"
        }
      ]
    }
  ]
}

제약:
- **JSON만** 출력 (설명/마크다운 금지)
- 불필요 키(book_summary/tips/itinerary 등) 금지
- 같은 지역은 인접 순서, 오전→점심→오후→저녁 흐름
- 각 stop마다 미션 1개 이상 (실제 지명 반드시 포함)

입력:
- 책 제목: %s
- 여행 인원: %d명
- 여행 기간: %d일
- 여행 테마: %s
`

func buildDraftPrompt(in PlanInput, bookContext, backgroundHints string) string {
	if strings.TrimSpace(bookContext) == "" {
		bookContext = "(검색 결과 없음)"
	}
	return fmt.Sprintf(draftPromptTemplate,
		bookContext, backgroundHints,
		in.BookTitle, in.Travelers, in.Days, in.Theme)
}
