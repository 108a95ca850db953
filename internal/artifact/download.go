package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 5 * time.Minute
	// DefaultRetries is the default number of download retries
	DefaultRetries = 3
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "sillisetup/1.0"
)

// Downloader stages remote artifacts with retry logic.
type Downloader struct {
	client       *http.Client
	userAgent    string
	retries      int
	showProgress bool
	log          Logger
}

// NewDownloader creates a new downloader. A nil logger falls back to a no-op.
func NewDownloader(log Logger) *Downloader {
	if log == nil {
		log = defaultLogger()
	}
	return &Downloader{
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Allow up to 10 redirects
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
		retries:   DefaultRetries,
		log:       log,
	}
}

// ShowProgress enables an advisory bytes-transferred progress bar on stderr.
// Silent invocations leave it off.
func (d *Downloader) ShowProgress(show bool) {
	d.showProgress = show
}

// DownloadAll stages a batch of tasks in order. A failed required task
// aborts the batch with ErrNetwork; a failed optional task is logged as a
// warning, its staging path removed, and the batch continues. Ordering
// between tasks does not matter to later steps, which depend on each staged
// file independently.
func (d *Downloader) DownloadAll(ctx context.Context, tasks []Task) error {
	for _, task := range tasks {
		err := d.DownloadTask(ctx, task)
		if err == nil {
			continue
		}

		if task.Required {
			return fmt.Errorf("%w: %s from %s: %v", ErrNetwork, task.Label, task.SourceURL, err)
		}

		d.log.Warn("optional download failed, continuing without it",
			"artifact", task.Label, "url", task.SourceURL, "error", err)
	}
	return nil
}

// DownloadTask downloads a single task with retries and exponential backoff.
func (d *Downloader) DownloadTask(ctx context.Context, task Task) error {
	var lastErr error

	for attempt := 0; attempt <= d.retries; attempt++ {
		// Check context before each attempt
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := d.downloadOnce(ctx, task)
		if err == nil {
			return nil
		}

		lastErr = err

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("download failed after %d retries: %w", d.retries, lastErr)
}

// downloadOnce performs a single whole-file download attempt. The transfer
// goes to a temp file that is renamed over the staging path on success, so a
// stale staging file from a previous run is either replaced or untouched.
func (d *Downloader) downloadOnce(ctx context.Context, task Task) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.SourceURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	destDir := filepath.Dir(task.StagingPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	tmpPath := task.StagingPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	// Track whether we need to clean up the temp file
	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath) // Clean up on error
		}
	}()

	var dest io.Writer = tmpFile
	if d.showProgress {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetDescription(fmt.Sprintf("downloading %s", task.Label)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		dest = io.MultiWriter(tmpFile, bar)
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	// Close temp file before rename
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, task.StagingPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	// Success - don't clean up the temp file (it's been renamed)
	cleanupNeeded = false

	d.log.Debug("staged artifact", "artifact", task.Label, "path", task.StagingPath)
	return nil
}
