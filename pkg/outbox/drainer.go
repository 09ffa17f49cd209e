package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/outboxevent"
)

// errNoEvents signals an empty queue to the drain loop.
var errNoEvents = errors.New("no unhandled outbox events")

// Handler processes one outbox event. Delivery is at least once: a handler
// may see the same event again after a crash, so side effects must be
// idempotent. Returning an error leaves the row unhandled for a later pass.
type Handler interface {
	Handle(ctx context.Context, ev *ent.OutboxEvent) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, ev *ent.OutboxEvent) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, ev *ent.OutboxEvent) error {
	return f(ctx, ev)
}

// Drainer delivers unhandled outbox rows to a Handler. It wakes on
// pg_notify and additionally polls at a fallback interval so a lost notify
// only delays delivery, never loses it. Rows are claimed with FOR UPDATE
// SKIP LOCKED so multiple replicas can drain concurrently.
type Drainer struct {
	client       *ent.Client
	connString   string
	handler      Handler
	pollInterval time.Duration

	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewDrainer creates a Drainer. connString is the LISTEN connection string;
// when empty the drainer runs on the fallback poll alone.
func NewDrainer(client *ent.Client, connString string, handler Handler, pollInterval time.Duration) *Drainer {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &Drainer{
		client:       client,
		connString:   connString,
		handler:      handler,
		pollInterval: pollInterval,
		wakeCh:       make(chan struct{}, 1),
		stopCh:       make(chan struct{}),
	}
}

// Start launches the listen and drain loops. Safe to call once; subsequent
// calls are no-ops.
func (d *Drainer) Start(ctx context.Context) {
	if d.started {
		slog.Warn("Outbox drainer already started, ignoring duplicate Start call")
		return
	}
	d.started = true

	if d.connString != "" {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.listenLoop(ctx)
		}()
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.drainLoop(ctx)
	}()

	slog.Info("Outbox drainer started", "poll_interval", d.pollInterval)
}

// Stop signals the loops to exit and waits for them.
func (d *Drainer) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
	slog.Info("Outbox drainer stopped")
}

// drainLoop drains on wake and on the fallback tick.
func (d *Drainer) drainLoop(ctx context.Context) {
	// Catch up on anything left over from before this replica started.
	d.drainAll(ctx)

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		case <-d.wakeCh:
			d.drainAll(ctx)
		case <-time.After(d.pollInterval):
			d.drainAll(ctx)
		}
	}
}

// drainAll processes unhandled events until the queue is empty or a handler
// fails. A failed event stays unhandled and the pass stops so the loop does
// not spin on a poison row; the next wake or tick retries.
func (d *Drainer) drainAll(ctx context.Context) {
	for {
		if err := d.drainOne(ctx); err != nil {
			if !errors.Is(err, errNoEvents) {
				slog.Error("Outbox drain pass stopped", "error", err)
			}
			return
		}
	}
}

// drainOne claims and handles a single event. The claim, the handler call,
// and the handled_at stamp share one transaction: a crash mid-handle leaves
// the row unhandled for redelivery.
func (d *Drainer) drainOne(ctx context.Context) error {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ev, err := tx.OutboxEvent.Query().
		Where(outboxevent.HandledAtIsNil()).
		Order(ent.Asc(outboxevent.FieldID)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errNoEvents
		}
		return fmt.Errorf("failed to query outbox events: %w", err)
	}

	if err := d.handler.Handle(ctx, ev); err != nil {
		return fmt.Errorf("handler failed for outbox event %d (%s): %w", ev.ID, ev.Topic, err)
	}

	if err := tx.OutboxEvent.UpdateOneID(ev.ID).
		SetHandledAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark outbox event handled: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outbox event: %w", err)
	}

	slog.Debug("Outbox event handled", "event_id", ev.ID, "topic", ev.Topic)
	return nil
}

// listenLoop holds a dedicated pgx connection on the NOTIFY channel and
// nudges the drain loop on every notification. Reconnects with backoff.
func (d *Drainer) listenLoop(ctx context.Context) {
	backoff := time.Second
	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		conn, err := pgx.Connect(ctx, d.connString)
		if err != nil {
			slog.Error("Outbox LISTEN connect failed", "error", err, "backoff", backoff)
			d.sleep(backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		backoff = time.Second

		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
			slog.Error("Outbox LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			d.sleep(backoff)
			continue
		}

		d.receive(ctx, conn)
		_ = conn.Close(ctx)
	}
}

// receive blocks on notifications until stop or a connection error.
func (d *Drainer) receive(ctx context.Context, conn *pgx.Conn) {
	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		// Short timeout so the stop signal is observed promptly.
		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		_, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if waitCtx.Err() != nil && ctx.Err() == nil {
				continue // Timeout — loop back to check stop
			}
			if ctx.Err() != nil {
				return
			}
			slog.Error("Outbox NOTIFY receive error", "error", err)
			return // Reconnect from listenLoop
		}

		d.wake()
	}
}

// wake nudges the drain loop without blocking.
func (d *Drainer) wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

func (d *Drainer) sleep(t time.Duration) {
	select {
	case <-d.stopCh:
	case <-time.After(t):
	}
}
