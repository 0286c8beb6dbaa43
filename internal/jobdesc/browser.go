package jobdesc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minRenderedLength is the minimum extracted text length to consider a
// plain HTTP fetch successful. Shorter results usually mean the posting is
// rendered client-side.
const minRenderedLength = 500

// looksUnrendered reports whether the extracted text is too short,
// indicating a JavaScript-rendered page.
func looksUnrendered(text string) bool {
	return len(strings.TrimSpace(text)) < minRenderedLength
}

// renderWithBrowser loads the page in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium on the system.
func renderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering time to populate the posting.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
