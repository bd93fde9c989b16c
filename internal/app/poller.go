// internal/app/poller.go
package app

import (
	"context"
	"errors"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const errorMessagePrefix = "Program failure: "

// APIClient fetches the raw review payload for a time window.
type APIClient interface {
	GetAPIAnswer(ctx context.Context, fromDate int64) (any, error)
}

// MessageSender delivers a notification. *Notifier implements it.
type MessageSender interface {
	Send(ctx context.Context, kind notification.Kind, text string) error
}

// Waiter paces the loop. *scheduler.Pacer implements it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Poller owns the cursor and both dedup caches. It is driven by a single
// goroutine and is not safe for concurrent use.
type Poller struct {
	api    APIClient
	sender MessageSender
	waiter Waiter
	logger *logrus.Entry

	// cursor is the from_date sent on every request. It is never advanced.
	cursor       int64
	lastStatus   string
	lastErrorMsg string
}

func NewPoller(api APIClient, sender MessageSender, waiter Waiter, cursor int64, logger *logrus.Entry) *Poller {
	return &Poller{
		api:    api,
		sender: sender,
		waiter: waiter,
		logger: logger,
		cursor: cursor,
	}
}

// Run polls until ctx is cancelled. Iteration failures never stop the loop.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.WithField("from_date", p.cursor).Info("Poller started")
	for {
		p.PollOnce(ctx)
		if err := p.waiter.Wait(ctx); err != nil {
			p.logger.WithError(err).Info("Poller stopped")
			return err
		}
	}
}

// PollOnce performs one fetch-validate-extract-notify pass.
func (p *Poller) PollOnce(ctx context.Context) {
	logCtx := p.logger.WithField("poll_id", uuid.NewString())
	if err := p.checkStatus(ctx, logCtx); err != nil {
		p.handleError(ctx, logCtx, err)
	}
}

func (p *Poller) checkStatus(ctx context.Context, logCtx *logrus.Entry) error {
	payload, err := p.api.GetAPIAnswer(ctx, p.cursor)
	if err != nil {
		return err
	}

	records, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logCtx.Info("status unchanged")
		return nil
	}

	// Only the first record is inspected.
	message, err := homework.ParseStatus(records[0])
	if err != nil {
		return err
	}
	if message == p.lastStatus {
		logCtx.Info(message)
		return nil
	}

	if err := p.sender.Send(ctx, notification.KindStatus, message); err != nil {
		return err
	}
	p.lastStatus = message
	logCtx.WithField("records", len(records)).Info("Status change notification sent")
	return nil
}

func (p *Poller) handleError(ctx context.Context, logCtx *logrus.Entry, err error) {
	text := err.Error()
	message := errorMessagePrefix + text
	logCtx = logCtx.WithError(err).WithField("error_kind", errorKind(err))
	logCtx.Error(message)

	if text == p.lastErrorMsg {
		return
	}
	if sendErr := p.sender.Send(ctx, notification.KindError, message); sendErr != nil {
		logCtx.WithField("send_error", sendErr.Error()).Error("Failed to deliver error notification")
		return
	}
	p.lastErrorMsg = text
}

func errorKind(err error) string {
	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		return "dispatch"
	}
	return homework.ErrorKind(err)
}

// LastStatus returns the most recently delivered status message.
func (p *Poller) LastStatus() string { return p.lastStatus }

// LastError returns the text of the most recently delivered error.
func (p *Poller) LastError() string { return p.lastErrorMsg }
