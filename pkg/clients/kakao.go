package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const kakaoKeywordURL = "https://dapi.kakao.com/v2/local/search/keyword.json"

// KakaoPlacesClient searches the Kakao local keyword API. A missing key or a
// failed request both come back as "no candidates" so resolution can degrade
// instead of aborting.
type KakaoPlacesClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewKakaoPlacesClient(apiKey string) PlacesClientInterface {
	return &KakaoPlacesClient{
		apiKey:  apiKey,
		baseURL: kakaoKeywordURL,
		httpc:   newHTTPClient(8 * time.Second),
	}
}

// NewKakaoPlacesClientWithBaseURL exists for tests against a stub server.
func NewKakaoPlacesClientWithBaseURL(apiKey, baseURL string) PlacesClientInterface {
	return &KakaoPlacesClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc:   newHTTPClient(8 * time.Second),
	}
}

type kakaoDocument struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	RoadAddressName string `json:"road_address_name"`
	AddressName     string `json:"address_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
	Phone           string `json:"phone"`
	PlaceURL        string `json:"place_url"`
}

func (k *KakaoPlacesClient) SearchKeyword(ctx context.Context, query, city string) ([]PlaceCandidate, error) {
	if k.apiKey == "" {
		return nil, nil
	}

	q := query
	if city != "" {
		q = city + " " + query
	}

	params := url.Values{}
	params.Set("query", q)
	params.Set("size", "5")
	params.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+k.apiKey)

	resp, err := k.httpc.Do(req)
	if err != nil {
		log.Printf("WARN Kakao search error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("WARN Kakao search status: %d", resp.StatusCode)
		return nil, fmt.Errorf("kakao search: status %d", resp.StatusCode)
	}

	var body struct {
		Documents []kakaoDocument `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("WARN Kakao search decode error: %v", err)
		return nil, err
	}

	docs := body.Documents
	if len(docs) > 2 {
		docs = docs[:2]
	}

	out := make([]PlaceCandidate, 0, len(docs))
	for _, d := range docs {
		addr := d.RoadAddressName
		if addr == "" {
			addr = d.AddressName
		}
		c := PlaceCandidate{
			Name:    d.PlaceName,
			Address: addr,
			Phone:   d.Phone,
			URL:     d.PlaceURL,
			Source:  "kakao_places",
			PlaceID: d.ID,
		}
		if lat, err := strconv.ParseFloat(d.Y, 64); err == nil && d.Y != "" {
			c.Lat = &lat
		}
		if lng, err := strconv.ParseFloat(d.X, 64); err == nil && d.X != "" {
			c.Lng = &lng
		}
		out = append(out, c)
	}
	return out, nil
}
