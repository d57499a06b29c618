package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager"
)

var errSharingDisabled = errors.New("credential sharing is not configured")

// CredentialSender publishes a secret and returns a link that reveals it.
type CredentialSender interface {
	Send(ctx context.Context, message string) (string, error)
}

// FugaciousCredentialSender stores secrets in a fugacious instance, which
// expires them after a number of hours or views.
type FugaciousCredentialSender struct {
	logger   lager.Logger
	endpoint string
	hours    int
	maxViews int
	client   *http.Client
}

func NewFugaciousCredentialSender(logger lager.Logger, endpoint string, hours, maxViews int) *FugaciousCredentialSender {
	return &FugaciousCredentialSender{
		logger:   logger.Session("fugacious"),
		endpoint: endpoint,
		hours:    hours,
		maxViews: maxViews,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (f *FugaciousCredentialSender) Send(ctx context.Context, message string) (string, error) {
	f.logger.Info("send", lager.Data{"hours": f.hours, "maxViews": f.maxViews})

	data := map[string]interface{}{
		"message": map[string]interface{}{
			"body":      message,
			"hours":     f.hours,
			"max_views": f.maxViews,
		},
	}

	body, err := encodeBody(data)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/m", f.endpoint), body)
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", fmt.Errorf("Expected status %d; got %d", http.StatusFound, resp.StatusCode)
	}
	return resp.Header.Get("Location"), nil
}
