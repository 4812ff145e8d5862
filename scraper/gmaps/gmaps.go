package gmaps

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"nearbee-scraper/config"
	"nearbee-scraper/models"
	"nearbee-scraper/services"
	"nearbee-scraper/storage"
	"nearbee-scraper/utils"
)

const searchBaseURL = "https://www.google.com/maps/search/"

// resultsFeedSelector is the container holding the result cards. If it never
// appears the maps layout changed or the request was blocked, and the whole
// run aborts.
const resultsFeedSelector = `div[role="feed"]`

// rawDetails holds the unprocessed per-field extraction results from a place
// detail page. An empty string means that field's selector found nothing.
type rawDetails struct {
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Image    string `json:"image"`
}

// detailFetcher navigates to a listing's detail page and extracts the raw
// optional fields. Implementations must leave the results view intact.
type detailFetcher interface {
	FetchDetails(ctx context.Context, href string) (rawDetails, error)
}

// Scraper drives one sequential scrape run: open the results view for a
// query, scroll, snapshot the listings, and persist each new one.
type Scraper struct {
	cfg        *config.Config
	logger     *utils.Logger
	store      storage.ShopStore
	normalizer *services.Normalizer
	now        func() time.Time
}

// New creates a ready-to-use maps Scraper backed by the given store.
func New(cfg *config.Config, logger *utils.Logger, store storage.ShopStore) *Scraper {
	return &Scraper{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		normalizer: services.NewNormalizer(services.DefaultCategories),
		now:        time.Now,
	}
}

// Run performs the full pipeline for one free-text query and returns the
// records it inserted. The browser session is torn down on every exit path,
// including the fatal abort when the results feed never appears.
func (s *Scraper) Run(ctx context.Context, query string) ([]*models.ShopRecord, error) {
	searchURL := buildSearchURL(query)
	s.logger.Info("[gmaps] Scraping started: %q", query)

	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Debug("[gmaps] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(searchURL),
		chromedp.Sleep(s.cfg.ResultsSettle),
	); err != nil {
		return nil, fmt.Errorf("gmaps: open results view: %w", err)
	}

	waitCtx, cancelWait := context.WithTimeout(browserCtx, s.cfg.ResultsWait)
	defer cancelWait()
	if err := chromedp.Run(waitCtx,
		chromedp.WaitVisible(resultsFeedSelector, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("gmaps: maps layout changed or blocked: %w", err)
	}

	// Blind infinite-scroll drive: always the full iteration count, no
	// termination check on growth.
	for i := 0; i < s.cfg.ScrollIterations; i++ {
		if err := chromedp.Run(browserCtx,
			chromedp.Evaluate(scrollScript, nil),
			chromedp.Sleep(s.cfg.ScrollSettle),
		); err != nil {
			return nil, fmt.Errorf("gmaps: scroll results: %w", err)
		}
	}

	var entries []listingEntry
	if err := chromedp.Run(browserCtx,
		chromedp.Evaluate(listingScript, &entries),
	); err != nil {
		return nil, fmt.Errorf("gmaps: snapshot listings: %w", err)
	}

	s.logger.Info("[gmaps] Found %d shops", len(entries))

	fetcher := &chromedpFetcher{ctx: browserCtx, settle: s.cfg.DetailSettle}

	var inserted []*models.ShopRecord
	for _, entry := range entries {
		record, err := s.processEntry(ctx, entry, fetcher)
		if err != nil {
			// One bad listing never aborts the run.
			s.logger.Error("[gmaps] Error processing %q: %v", entry.Name, err)
			continue
		}
		if record != nil {
			inserted = append(inserted, record)
		}
	}

	s.logger.Info("[gmaps] Scraping done: %d inserted", len(inserted))
	return inserted, nil
}

// processEntry runs one listing end-to-end: coordinate gate, duplicate
// check, detail extraction, insert. A nil record with nil error means the
// listing was skipped (unparseable coordinates or duplicate natural key).
func (s *Scraper) processEntry(ctx context.Context, entry listingEntry, fetcher detailFetcher) (*models.ShopRecord, error) {
	lat, lng, ok := parseCoordinates(entry.Href)
	if !ok {
		s.logger.Debug("[gmaps] Skipped (no coordinate pair): %s", entry.Name)
		return nil, nil
	}

	exists, err := s.store.FindByNaturalKey(ctx, entry.Name, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		s.logger.Info("[gmaps] Duplicate skipped: %s", entry.Name)
		return nil, nil
	}

	raw, err := fetcher.FetchDetails(ctx, entry.Href)
	if err != nil {
		return nil, fmt.Errorf("detail page: %w", err)
	}

	record := models.NewShopRecord(
		models.ShopIdentity{Name: entry.Name, Latitude: lat, Longitude: lng},
		s.buildDetails(raw),
		s.now(),
	)

	if err := s.store.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}

	s.logger.Info("[gmaps] Inserted: %s (%s)", record.ShopName, record.Category)
	return record, nil
}

// buildDetails applies the normalizer and sanitizer to raw detail fields.
// The category always goes through the normalizer, whose empty-input
// handling yields the "Others" fallback; the other fields stay absent when
// their selector found nothing.
func (s *Scraper) buildDetails(raw rawDetails) models.ShopDetails {
	details := models.ShopDetails{
		Category: models.Some(s.normalizer.Normalize(raw.Category)),
	}
	if raw.Phone != "" {
		details.Phone = models.Some(services.SanitizePhone(raw.Phone))
	}
	if raw.Address != "" {
		details.Address = models.Some(stripAddressPrefix(raw.Address))
	}
	if raw.Image != "" {
		details.Image = models.Some(raw.Image)
	}
	return details
}

// chromedpFetcher opens each detail page in an auxiliary tab of the running
// browser so the results feed stays loaded. Cancelling the tab context
// closes the tab regardless of which fields succeeded.
type chromedpFetcher struct {
	ctx    context.Context
	settle time.Duration
}

func (f *chromedpFetcher) FetchDetails(ctx context.Context, href string) (rawDetails, error) {
	tabCtx, cancelTab := chromedp.NewContext(f.ctx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 60*time.Second)
	defer cancelTimeout()

	var raw rawDetails
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(href),
		chromedp.Sleep(f.settle),
		chromedp.Evaluate(detailScript, &raw),
	)
	if err != nil {
		return rawDetails{}, fmt.Errorf("chromedp detail extract: %w", err)
	}
	return raw, nil
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

const scrollScript = `(function () {
	const feed = document.querySelector('div[role="feed"]');
	if (feed) {
		feed.scrollTop = feed.scrollHeight;
	}
})();`

const listingScript = `(function () {
	const cards = document.querySelectorAll("div[role='article']");
	const entries = [];
	for (const card of cards) {
		const link = card.querySelector('a.hfpxzc');
		if (!link) continue;
		const name = link.getAttribute('aria-label');
		const href = link.href;
		if (!name || !href) continue;
		entries.push({ name: name, href: href });
	}
	return entries;
})();`

const detailScript = `(function () {
	const result = { category: '', phone: '', address: '', image: '' };

	const categoryBtn = document.querySelector('button[jsaction*="category"]');
	if (categoryBtn) {
		result.category = (categoryBtn.textContent || '').trim();
	}

	const phoneBtn = document.querySelector('button[aria-label*="Phone"]');
	if (phoneBtn) {
		result.phone = phoneBtn.getAttribute('aria-label') || '';
	}

	const addressBtn = document.querySelector("button[data-item-id='address']");
	if (addressBtn) {
		result.address = addressBtn.getAttribute('aria-label') || '';
	}

	const img = document.querySelector('img[src*="googleusercontent.com"]');
	if (img) {
		result.image = img.src || '';
	}

	return result;
})();`
