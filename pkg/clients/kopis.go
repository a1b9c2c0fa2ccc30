package clients

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"readandlead/pkg/utils"
)

const kopisListURL = "http://www.kopis.or.kr/openApi/restful/pblprfr"

// kopisSidoCode maps province display names to KOPIS region codes.
var kopisSidoCode = map[string]string{
	"서울특별시":   "11",
	"부산광역시":   "26",
	"대구광역시":   "27",
	"인천광역시":   "28",
	"광주광역시":   "29",
	"대전광역시":   "30",
	"울산광역시":   "31",
	"세종특별자치시": "36",
	"경기도":     "41",
	"강원도":     "42",
	"충청북도":    "43",
	"충청남도":    "44",
	"전라북도":    "45",
	"전라남도":    "46",
	"경상북도":    "47",
	"경상남도":    "48",
	"제주특별자치도": "50",
}

type Performance struct {
	ID        string `xml:"mt20id" json:"id"`
	Name      string `xml:"prfnm" json:"name"`
	StartDate string `xml:"prfpdfrom" json:"start_date"`
	EndDate   string `xml:"prfpdto" json:"end_date"`
	Venue     string `xml:"fcltynm" json:"venue"`
	Poster    string `xml:"poster" json:"poster"`
	Genre     string `xml:"genrenm" json:"genre"`
	State     string `xml:"prfstate" json:"state"`
}

type kopisEnvelope struct {
	XMLName xml.Name      `xml:"dbs"`
	Items   []Performance `xml:"db"`
}

// KopisClient lists public performances from the KOPIS XML feed.
type KopisClient struct {
	serviceKey string
	httpc      *http.Client
}

func NewKopisClient(serviceKey string) *KopisClient {
	return &KopisClient{serviceKey: serviceKey, httpc: newHTTPClient(10 * time.Second)}
}

func (k *KopisClient) Performances(ctx context.Context, city, from, to string, rows, page int, gugunCode string) ([]Performance, error) {
	if k.serviceKey == "" {
		return nil, utils.ErrNotConfigured
	}

	if from == "" {
		from = time.Now().Format("20060102")
	}
	if to == "" {
		to = time.Now().AddDate(0, 0, 14).Format("20060102")
	}

	params := url.Values{}
	params.Set("service", k.serviceKey)
	params.Set("stdate", from)
	params.Set("eddate", to)
	params.Set("rows", strconv.Itoa(rows))
	params.Set("cpage", strconv.Itoa(page))
	if code, ok := kopisSidoCode[city]; ok && city != "" {
		params.Set("signgucode", code)
	}
	if gugunCode != "" {
		params.Set("signgucodesub", gugunCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, kopisListURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := k.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kopis: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope kopisEnvelope
	if err := xml.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("kopis: unparseable response: %w", err)
	}
	return envelope.Items, nil
}
