package workers

import (
	"context"
	"sync"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
)

const mailWorkerName = "mail_dispatcher"

// MailDispatcher отправляет письма в фоне из буферизированной очереди.
// Enqueue никогда не блокирует HTTP-запрос.
type MailDispatcher struct {
	provider    email.Provider
	queue       chan *email.Email
	sendTimeout time.Duration
	wg          sync.WaitGroup
}

func NewMailDispatcher(provider email.Provider, queueSize int) *MailDispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}
	return &MailDispatcher{
		provider:    provider,
		queue:       make(chan *email.Email, queueSize),
		sendTimeout: 30 * time.Second,
	}
}

// Start запускает воркер; он завершится при отмене ctx, дослав уже поставленные письма
func (d *MailDispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

// Enqueue ставит письмо в очередь. false - очередь переполнена, письмо отброшено.
func (d *MailDispatcher) Enqueue(msg *email.Email) bool {
	select {
	case d.queue <- msg:
		return true
	default:
		logger.WorkerLog(mailWorkerName, "enqueue", errQueueFull, "subject", msg.Subject)
		return false
	}
}

// Wait ожидает остановки воркера
func (d *MailDispatcher) Wait() {
	d.wg.Wait()
}

func (d *MailDispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			d.drain()
			logger.Info("Mail dispatcher stopped")
			return
		case msg := <-d.queue:
			d.send(context.Background(), msg)
		}
	}
}

func (d *MailDispatcher) drain() {
	for {
		select {
		case msg := <-d.queue:
			d.send(context.Background(), msg)
		default:
			return
		}
	}
}

func (d *MailDispatcher) send(parent context.Context, msg *email.Email) {
	ctx, cancel := context.WithTimeout(parent, d.sendTimeout)
	defer cancel()

	err := d.provider.Send(ctx, msg)
	logger.WorkerLog(mailWorkerName, "send", err, "subject", msg.Subject)
}
