package smsactivate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultPollInterval = 5 * time.Second

// WaitForSMS polls the activation until the code arrives, the provider reports
// a terminal error, or ctx is done.
func (c *Client) WaitForSMS(ctx context.Context, id string, interval time.Duration) (string, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		res, err := c.CheckSMS(ctx, id)
		if err != nil {
			return "", err
		}
		if !res.Pending {
			return res.Code, nil
		}

		c.logger.Debug("SMS not received yet",
			zap.String("id", id),
			zap.Int("attempt", attempt),
			zap.Duration("interval", interval))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}
