package window

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// RefreshAll asks the frontend to refresh every tracked repository.
const RefreshAll = "refresh-all"

const (
	fetchNowPath  = "/api/scheduler/fetch-now"
	bridgeTimeout = 5 * time.Second
)

// SidecarBridge delivers window events to the sidecar's local HTTP API.
type SidecarBridge struct {
	BaseURL string
	Client  *http.Client
}

func (b *SidecarBridge) Deliver(event string, _ any) error {
	switch event {
	case RefreshAll:
		return b.post(fetchNowPath)
	default:
		slog.Debug("no sidecar route for window event", "event", event)
		return nil
	}
}

func (b *SidecarBridge) post(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), bridgeTimeout)
	defer cancel()

	url := strings.TrimRight(b.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sidecar request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sidecar request %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	slog.Info("sidecar accepted window event", "path", path, "status_code", resp.StatusCode)
	return nil
}
