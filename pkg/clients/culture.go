package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"
)

const cultureEventsURL = "http://www.culture.go.kr/openapi/rest/publicperformancedisplays/period"

// CultureClient proxies the culture.go.kr period listing, scoped by a
// bounding box around a center point. Missing credentials and upstream
// failures both return the empty envelope the frontend parser expects.
type CultureClient struct {
	serviceKey string
	httpc      *http.Client
}

func NewCultureClient(serviceKey string) *CultureClient {
	return &CultureClient{serviceKey: serviceKey, httpc: newHTTPClient(10 * time.Second)}
}

func emptyCultureEnvelope() map[string]interface{} {
	return map[string]interface{}{
		"response": map[string]interface{}{
			"body": map[string]interface{}{
				"items": map[string]interface{}{"item": []interface{}{}},
			},
		},
	}
}

// bboxFromCenter converts a radius in km to a lat/lng box. 111km per degree
// of latitude; longitude shrinks with cos(lat).
func bboxFromCenter(lat, lng, radiusKm float64) (xfrom, yfrom, xto, yto float64) {
	dlat := radiusKm / 111.0
	dlng := radiusKm / (111.0 * math.Max(math.Cos(lat*math.Pi/180.0), 1e-6))
	return lng - dlng, lat - dlat, lng + dlng, lat + dlat
}

func (c *CultureClient) Nearby(ctx context.Context, lat, lng, radiusKm float64, from, to, keyword string) map[string]interface{} {
	if c.serviceKey == "" {
		return emptyCultureEnvelope()
	}

	if from == "" {
		from = time.Now().Format("20060102")
	}
	if to == "" {
		to = time.Now().AddDate(0, 0, 14).Format("20060102")
	}

	xfrom, yfrom, xto, yto := bboxFromCenter(lat, lng, radiusKm)

	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("cPage", "1")
	params.Set("rows", "50")
	params.Set("place", "")
	params.Set("gpsxfrom", fmt.Sprintf("%.6f", xfrom))
	params.Set("gpsyfrom", fmt.Sprintf("%.6f", yfrom))
	params.Set("gpsxto", fmt.Sprintf("%.6f", xto))
	params.Set("gpsyto", fmt.Sprintf("%.6f", yto))
	params.Set("keyword", keyword)
	params.Set("sortStdr", "1")
	params.Set("serviceKey", c.serviceKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cultureEventsURL+"?"+params.Encode(), nil)
	if err != nil {
		return emptyCultureEnvelope()
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("WARN culture nearby error: %v", err)
		return emptyCultureEnvelope()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("WARN culture nearby status: %d", resp.StatusCode)
		return emptyCultureEnvelope()
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return emptyCultureEnvelope()
	}
	return body
}
