package render

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 landscape at 96 DPI; deviceScaleFactor 2 gives a print-quality capture.
const (
	viewportWidth  = 1123
	viewportHeight = 794
	viewportScale  = 2
)

// ChromeRasterizer captures a filled certificate template as a PNG using a
// headless Chrome tab. One tab per call; the browser context is torn down
// before returning.
type ChromeRasterizer struct{}

func (ChromeRasterizer) Screenshot(ctx context.Context, htmlContent string) ([]byte, error) {
	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(cctx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(viewportScale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		// The QR code is an inline data URL but the logo is a remote image;
		// give the tab a moment to finish fetching before the capture.
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
