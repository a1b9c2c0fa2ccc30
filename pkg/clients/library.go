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

const nlkSaseoURL = "https://www.nl.go.kr/NL/search/openApi/saseoApi.do"

// BookPick is one librarian-recommended title from the national library feed.
type BookPick struct {
	Title       string `xml:"recomtitle" json:"title"`
	Author      string `xml:"recomauthor" json:"author"`
	Publisher   string `xml:"recompublisher" json:"publisher"`
	PublishYear string `xml:"publishYear" json:"publish_year"`
	ISBN        string `xml:"recomisbn" json:"isbn"`
	Description string `xml:"recomcontens" json:"description"`
	Category    string `xml:"drCodeName" json:"category"`
}

type nlkEnvelope struct {
	XMLName xml.Name   `xml:"channel"`
	Items   []BookPick `xml:"list>item"`
}

// LibraryClient fetches librarian picks from the National Library of Korea.
// drCode selects the shelf: 11=literature, 6=humanities, 5=social, 4=science.
type LibraryClient struct {
	apiKey string
	httpc  *http.Client
}

func NewLibraryClient(apiKey string) *LibraryClient {
	return &LibraryClient{apiKey: apiKey, httpc: newHTTPClient(10 * time.Second)}
}

func (l *LibraryClient) Recommendations(ctx context.Context, startDate, endDate string, drCode, start, end int) ([]BookPick, error) {
	if l.apiKey == "" {
		return nil, utils.ErrNotConfigured
	}

	params := url.Values{}
	params.Set("key", l.apiKey)
	params.Set("startRowNumApi", strconv.Itoa(start))
	params.Set("endRowNumApi", strconv.Itoa(end))
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("drcode", strconv.Itoa(drCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nlkSaseoURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nlk: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope nlkEnvelope
	if err := xml.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("nlk: unparseable response: %w", err)
	}
	return envelope.Items, nil
}
