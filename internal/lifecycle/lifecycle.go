// Package lifecycle registers a Discord bot with go-sarah and runs it until shutdown or a fatal bot error.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

// Alerter is a sarah.Alerter that hands the first alerted error to whoever waits on Err.
type Alerter struct {
	once sync.Once
	err  chan error
}

var _ sarah.Alerter = (*Alerter)(nil)

// NewAlerter creates a new Alerter.
func NewAlerter() *Alerter {
	return &Alerter{
		err: make(chan error, 1),
	}
}

// Alert records err. Only the first alert is kept.
func (a *Alerter) Alert(_ context.Context, botType sarah.BotType, err error) error {
	a.once.Do(func() {
		a.err <- fmt.Errorf("%s bot stopped: %w", botType, err)
	})
	return nil
}

// Err returns a channel that receives the first alerted error.
func (a *Alerter) Err() <-chan error {
	return a.err
}

// Wait blocks until ctx is done or an alert arrives.
// It returns nil on a clean shutdown and the alerted error otherwise.
func (a *Alerter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-a.err:
		return err
	}
}

// Run registers a bot for adapter along with its commands and blocks until ctx is done or the bot fails.
func Run(ctx context.Context, adapter sarah.Adapter, props ...*sarah.CommandProps) error {
	if adapter == nil {
		return errors.New("adapter is required")
	}

	sarah.RegisterBot(sarah.NewBot(adapter))
	for _, p := range props {
		sarah.RegisterCommandProps(p)
	}

	alerter := NewAlerter()
	sarah.RegisterAlerter(alerter)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sarah.Run(ctx, sarah.NewConfig()); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	logger.Infof("%s bot is running. Press Ctrl+C to stop.", adapter.BotType())

	if err := alerter.Wait(ctx); err != nil {
		return err
	}

	logger.Infof("Shutting down...")
	return nil
}
