package helpers

import (
	"sync"

	"jobboard_backend/internal/email"
)

// MailRecorder - очередь писем для тестов, запоминает все поставленные письма
type MailRecorder struct {
	mu       sync.Mutex
	messages []*email.Email
	Full     bool // имитация переполненной очереди
}

func (r *MailRecorder) Enqueue(msg *email.Email) bool {
	if r.Full {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return true
}

func (r *MailRecorder) Messages() []*email.Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*email.Email, len(r.messages))
	copy(out, r.messages)
	return out
}

// SentTo - письма конкретному адресату
func (r *MailRecorder) SentTo(address string) []*email.Email {
	var out []*email.Email
	for _, msg := range r.Messages() {
		for _, to := range msg.To {
			if to == address {
				out = append(out, msg)
				break
			}
		}
	}
	return out
}
