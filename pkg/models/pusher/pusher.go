package pusher

import (
	"log"
	"sync"
	"time"
)

// Pusher batches messages and flushes them on a fixed interval through the
// configured push logic.
type Pusher[T any] struct {
	PushLogic    func(...T) error
	PushInterval time.Duration
	ErrorHandler func(error)

	buffer []T
	lock   sync.Mutex
	stop   chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { log.Println(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

// PushAll flushes the buffer. The buffer is restored when the push logic
// fails so the next interval retries it.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	pending := p.buffer
	p.buffer = nil
	p.lock.Unlock()

	if len(pending) == 0 {
		return nil
	}

	if err := p.PushLogic(pending...); err != nil {
		p.lock.Lock()
		p.buffer = append(pending, p.buffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) Start() {
	go func() {
		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			if err := p.PushAll(); err != nil {
				p.ErrorHandler(err)
			}

			select {
			case <-p.stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (p *Pusher[T]) Stop() {
	close(p.stop)
}
