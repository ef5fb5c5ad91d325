package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/statuswatch/statuswatch/internal/models"
	"github.com/statuswatch/statuswatch/internal/parser"
)

const maxFeedBytes = 8 << 20

type rssFeed struct {
	Channel struct {
		Title string    `xml:"title"`
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// Client fetches and decodes a status-page history feed.
type Client struct {
	url string
	cli *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		cli: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the feed and returns its normalized records. Network
// errors, non-2xx responses and malformed XML are fatal; per-item problems
// are handled by Decode.
func (c *Client) Fetch(ctx context.Context) ([]models.FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed request returned status %s", resp.Status)
	}

	return Decode(io.LimitReader(resp.Body, maxFeedBytes))
}

// Decode parses raw feed XML into normalized records. Items with a missing
// or unparsable pubDate are dropped; a missing channel or empty item list
// yields zero records without error.
func Decode(r io.Reader) ([]models.FeedRecord, error) {
	var doc rssFeed
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed XML: %w", err)
	}

	var records []models.FeedRecord
	for _, item := range doc.Channel.Items {
		pub, err := parsePubDate(item.PubDate)
		if err != nil {
			continue
		}

		records = append(records, models.FeedRecord{
			Title:        strings.TrimSpace(item.Title),
			StartTime:    pub,
			Description:  item.Description,
			IncidentType: parser.ParseIncidentType(item.Description),
			Components:   parser.ParseComponents(item.Description),
		})
	}
	return records, nil
}

// RFC 2822 style dates as seen in the wild, with and without a zone offset.
// Dates without an offset are taken as UTC.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

func parsePubDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty pubDate")
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized pubDate: %q", s)
}
