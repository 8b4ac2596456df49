package gaa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// chromeMu serializes all Chrome usage so only one instance runs at a time.
var chromeMu sync.Mutex

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// recordSelector matches section headers and match items in document order.
const recordSelector = ".gar-matches-list h3.gar-matches-list__group-name, .gar-matches-list .gar-match-item"

// PageRenderer fetches the live fixtures page with a headless browser and
// scans it into raw records. It is the external raw-extraction collaborator;
// the aggregation core only sees the RecordSource contract.
type PageRenderer struct {
	url    string
	logger *slog.Logger
}

// NewPageRenderer constructs a renderer for the given fixtures page URL.
func NewPageRenderer(url string, logger *slog.Logger) *PageRenderer {
	return &PageRenderer{url: url, logger: logger}
}

// Records renders the page and returns its raw records in scan order.
func (r *PageRenderer) Records(ctx context.Context) ([]RawRecord, error) {
	html, err := r.renderPage(ctx)
	if err != nil {
		return nil, err
	}
	return ParseDocument(strings.NewReader(html))
}

func (r *PageRenderer) renderPage(ctx context.Context) (string, error) {
	chromeMu.Lock()
	defer chromeMu.Unlock()

	chromeDir, err := os.MkdirTemp("", "gaa_chrome_")
	if err != nil {
		return "", fmt.Errorf("create chrome temp dir: %w", err)
	}
	defer os.RemoveAll(chromeDir)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserDataDir(chromeDir),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(r.url),
		chromedp.WaitReady("body"),
	); err != nil {
		return "", fmt.Errorf("render fixtures page: %w", err)
	}

	// Best effort: some weeks the page hides later fixtures behind a
	// "more results" button.
	r.expandResults(browserCtx)

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("read fixtures page: %w", err)
	}
	return html, nil
}

func (r *PageRenderer) expandResults(ctx context.Context) {
	clickCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := chromedp.Run(clickCtx,
		chromedp.Click(".gar-matches-list__btn.btn-secondary.-next", chromedp.NodeVisible),
		chromedp.Sleep(2*time.Second),
	)
	if err != nil && r.logger != nil {
		r.logger.Debug("no more-results button on fixtures page", "error", err)
	}
}

// ParseDocument scans the rendered page for competition headers and match
// items, preserving document order so the section fold sees headers before
// the matches they label.
func ParseDocument(html io.Reader) ([]RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return nil, fmt.Errorf("parse fixtures page: %w", err)
	}

	var records []RawRecord
	doc.Find(recordSelector).Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "h3" {
			if section := strings.TrimSpace(sel.Text()); section != "" {
				records = append(records, RawRecord{Section: section})
			}
			return
		}
		if rec, ok := matchRecord(sel); ok {
			records = append(records, rec)
		}
	})
	return records, nil
}

func matchRecord(sel *goquery.Selection) (RawRecord, bool) {
	rec := RawRecord{
		Home:  strings.TrimSpace(sel.Find(".gar-match-item__team.-home .gar-match-item__team-name").Text()),
		Away:  strings.TrimSpace(sel.Find(".gar-match-item__team.-away .gar-match-item__team-name").Text()),
		Time:  strings.TrimSpace(sel.Find(".gar-match-item__upcoming").Text()),
		Venue: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(sel.Find(".gar-match-item__venue").Text()), "Venue:")),
	}
	rec.Date, _ = sel.Attr("data-match-date")
	rec.Channel = broadcasterLabel(sel)

	if rec.Home == "" || rec.Away == "" || rec.Time == "" || rec.Date == "" {
		return RawRecord{}, false
	}
	return rec, true
}

// broadcasterLabel pulls the raw channel name out of the TV provider logo's
// alt text ("Broadcasting on <name>").
func broadcasterLabel(sel *goquery.Selection) string {
	alt, ok := sel.Find(".gar-match-item__tv-provider img").Attr("alt")
	if !ok {
		return ""
	}
	const prefix = "Broadcasting on "
	if idx := strings.Index(alt, prefix); idx >= 0 {
		return strings.TrimSpace(alt[idx+len(prefix):])
	}
	return ""
}
