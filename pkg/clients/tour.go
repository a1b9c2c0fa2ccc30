package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"readandlead/pkg/utils"
)

const tourSearchURL = "https://apis.data.go.kr/B551011/KorService1/searchKeyword1"

// TourClient proxies the national TourAPI keyword search. The upstream
// payload is passed through untouched; only transport errors surface.
type TourClient struct {
	serviceKey string
	httpc      *http.Client
}

func NewTourClient(serviceKey string) *TourClient {
	return &TourClient{serviceKey: serviceKey, httpc: newHTTPClient(10 * time.Second)}
}

func (t *TourClient) SearchKeyword(ctx context.Context, keyword string, numOfRows, pageNo int) (map[string]interface{}, error) {
	if t.serviceKey == "" {
		return nil, utils.ErrNotConfigured
	}

	params := url.Values{}
	params.Set("serviceKey", t.serviceKey)
	params.Set("MobileOS", "ETC")
	params.Set("MobileApp", "readandlead")
	params.Set("numOfRows", strconv.Itoa(numOfRows))
	params.Set("pageNo", strconv.Itoa(pageNo))
	params.Set("keyword", keyword)
	params.Set("_type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tourSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tour search: status %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
