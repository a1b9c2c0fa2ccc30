package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/internal/services"
)

// TestCoercePlanText_PlainJSON verifies a clean JSON object parses as-is.
func TestCoercePlanText_PlainJSON(t *testing.T) {
	got := services.CoercePlanText(`{"summary":"요약","days":[{"day":1}]}`)
	assert.Equal(t, "요약", got.Summary)
	require.Len(t, got.Days, 1)
}

// TestCoercePlanText_CodeFence verifies markdown fences and the json tag are
// stripped before parsing.
func TestCoercePlanText_CodeFence(t *testing.T) {
	got := services.CoercePlanText("```json\n{\"summary\":\"요약\",\"days\":[]}\n```")
	assert.Equal(t, "요약", got.Summary)
	assert.Empty(t, got.Days)
}

// TestCoercePlanText_SurroundingChatter verifies the outermost object is
// extracted from commentary the model added around it.
func TestCoercePlanText_SurroundingChatter(t *testing.T) {
	got := services.CoercePlanText("물론이죠! 여기 계획입니다:\n{\"summary\":\"요약\",\"days\":[]}\n도움이 되었길!")
	assert.Equal(t, "요약", got.Summary)
}

// TestCoercePlanText_Unparseable verifies garbage collapses to the empty
// plan instead of failing.
func TestCoercePlanText_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "죄송합니다, 도와드릴 수 없습니다.", "{broken", "[1,2,3]"} {
		got := services.CoercePlanText(raw)
		assert.Equal(t, "", got.Summary)
		assert.Empty(t, got.Days)
	}
}

// TestCoercePlanText_CarriageReturnRetry verifies a raw control character
// inside a string is repaired by the strip-and-retry pass.
func TestCoercePlanText_CarriageReturnRetry(t *testing.T) {
	got := services.CoercePlanText("{\"summary\":\"앞\r뒤\",\"days\":[]}")
	assert.Equal(t, "앞뒤", got.Summary)
}

// TestCoercePlanText_BookSummarySynthesis verifies a summary is synthesized
// from a book_summary object when the model used the wrong key.
func TestCoercePlanText_BookSummarySynthesis(t *testing.T) {
	got := services.CoercePlanText(`{"book_summary":{"title":"소나기","plot":"소년과 소녀의 이야기"},"days":[]}`)
	assert.Equal(t, "소나기 기반 여행 요약: 소년과 소녀의 이야기", got.Summary)
}

// TestCoercePlanText_NonListDays verifies a days value of the wrong shape is
// replaced with an empty list.
func TestCoercePlanText_NonListDays(t *testing.T) {
	got := services.CoercePlanText(`{"summary":"요약","days":{"day":1}}`)
	assert.Equal(t, "요약", got.Summary)
	assert.Empty(t, got.Days)
}
