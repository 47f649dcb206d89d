package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/softsales/api/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type AgreementSignedEvent struct {
	AgreementID uuid.UUID       `json:"agreementId"`
	ClientID    uuid.UUID       `json:"clientId"`
	SoftwareID  uuid.UUID       `json:"softwareId"`
	Price       decimal.Decimal `json:"price"`
	SignedAt    time.Time       `json:"signedAt"`
}

// SendAgreementSigned publishes the signing event asynchronously. Delivery
// failures are logged, not surfaced: settlement already committed.
func (p *Producer) SendAgreementSigned(ctx context.Context, a entity.Agreement) {
	event := AgreementSignedEvent{
		AgreementID: a.ID,
		ClientID:    a.ClientID,
		SoftwareID:  a.SoftwareID,
		Price:       a.Price,
		SignedAt:    a.UpdatedAt,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   a.ID.Bytes(),
		Value: b,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write message: %s", err))
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

type infoLogger struct {
	l *slog.Logger
}

func (i *infoLogger) Printf(format string, args ...any) {
	i.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (e *errorLogger) Printf(format string, args ...any) {
	e.l.Error(fmt.Sprintf(format, args...))
}
