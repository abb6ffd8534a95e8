package workers

import (
	"context"

	"francoggm/emipay-gateway-go/internal/app/workers/processors"
	"francoggm/emipay-gateway-go/internal/logger"
)

type worker struct {
	id              int
	eventsCh        chan any
	eventsProcessor processors.Processor
	log             *logger.Logger
}

func newWorker(id int, eventsCh chan any, eventsProcessor processors.Processor, log *logger.Logger) *worker {
	return &worker{
		id:              id,
		eventsCh:        eventsCh,
		eventsProcessor: eventsProcessor,
		log:             log,
	}
}

func (w *worker) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.eventsCh:
			if !ok {
				return
			}

			if err := w.eventsProcessor.ProcessEvent(ctx, event); err != nil {
				w.log.Warn("failed to process event", "worker", w.id, "err", err)
			}
		}
	}
}
