package clients_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readandlead/pkg/clients"
)

const kakaoStubBody = `{"documents":[
	{"id":"111","place_name":"청계천","road_address_name":"","address_name":"서울 종로구 서린동","x":"126.977","y":"37.569","phone":"","place_url":"http://place.map.kakao.com/111"},
	{"id":"222","place_name":"세운상가","road_address_name":"서울 종로구 청계천로 159","address_name":"서울 종로구 장사동","x":"126.995","y":"37.567","phone":"02-000-0000","place_url":"http://place.map.kakao.com/222"},
	{"id":"333","place_name":"세번째","road_address_name":"","address_name":"","x":"","y":"","phone":"","place_url":""}
]}`

// TestSearchKeyword_ParsesCandidates verifies auth header, city scoping, the
// two-candidate cap, road-address preference, and coordinate parsing.
func TestSearchKeyword_ParsesCandidates(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(kakaoStubBody))
	}))
	defer srv.Close()

	client := clients.NewKakaoPlacesClientWithBaseURL("test-key", srv.URL)
	cands, err := client.SearchKeyword(context.Background(), "공원 청계천", "서울 종로구")
	require.NoError(t, err)

	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, "서울 종로구 공원 청계천", gotQuery)

	require.Len(t, cands, 2)
	assert.Equal(t, "청계천", cands[0].Name)
	assert.Equal(t, "서울 종로구 서린동", cands[0].Address)
	require.NotNil(t, cands[0].Lat)
	assert.InDelta(t, 37.569, *cands[0].Lat, 1e-9)

	assert.Equal(t, "서울 종로구 청계천로 159", cands[1].Address)
	assert.Equal(t, "kakao_places", cands[1].Source)
}

// TestSearchKeyword_MissingKey verifies an unconfigured client returns no
// candidates and no error without calling the network.
func TestSearchKeyword_MissingKey(t *testing.T) {
	client := clients.NewKakaoPlacesClient("")
	cands, err := client.SearchKeyword(context.Background(), "청계천", "")
	require.NoError(t, err)
	assert.Nil(t, cands)
}

// TestSearchKeyword_UpstreamError verifies a non-200 status surfaces as an
// error the resolver treats as "no candidates".
func TestSearchKeyword_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := clients.NewKakaoPlacesClientWithBaseURL("test-key", srv.URL)
	cands, err := client.SearchKeyword(context.Background(), "청계천", "")
	require.Error(t, err)
	assert.Empty(t, cands)
}
