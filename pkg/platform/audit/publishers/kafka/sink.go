// Package kafka mirrors audit events onto a Kafka topic for downstream
// consumers such as archival and SIEM pipelines.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/circuit"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// ErrCircuitOpen is returned while the broker is considered unhealthy.
var ErrCircuitOpen = errors.New("audit kafka sink: circuit open")

// message is the wire form of an audit event.
type message struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"`
	UserID    int64  `json:"user_id,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Action    string `json:"action"`
	Decision  string `json:"decision,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	ActorID   string `json:"actor_id,omitempty"`
}

// Sink produces audit events synchronously. Records are keyed by user so a
// user's events stay ordered within a partition.
type Sink struct {
	client  *kgo.Client
	topic   string
	breaker *circuit.Breaker
	logger  *slog.Logger
}

type Option func(*Sink)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		s.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Sink) {
		s.breaker = b
	}
}

// NewClient builds a franz-go client for the given seed brokers.
func NewClient(brokers []string, topic string) (*kgo.Client, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return cl, nil
}

func NewSink(client *kgo.Client, topic string, opts ...Option) *Sink {
	s := &Sink{
		client:  client,
		topic:   topic,
		breaker: circuit.New("audit-kafka", circuit.WithFailureThreshold(3)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureTopic creates the audit topic if it does not exist.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32, replicationFactor int16) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, partitions, replicationFactor, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func encode(event audit.Event) ([]byte, error) {
	return json.Marshal(message{
		ID:        event.ID,
		Category:  string(event.Category),
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339Nano),
		UserID:    int64(event.UserID),
		Subject:   event.Subject,
		Action:    event.Action,
		Decision:  event.Decision,
		Reason:    event.Reason,
		RequestID: event.RequestID,
		ActorID:   event.ActorID,
	})
}

// Append produces one record and waits for the broker acknowledgement.
func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	if !s.breaker.Allow() {
		return ErrCircuitOpen
	}
	value, err := encode(event)
	if err != nil {
		return fmt.Errorf("marshal audit message: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(strconv.FormatInt(int64(event.UserID), 10)),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "category", Value: []byte(event.Category)},
		},
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		if _, change := s.breaker.RecordFailure(); change.Opened && s.logger != nil {
			s.logger.WarnContext(ctx, "audit kafka sink circuit opened", "topic", s.topic, "error", err)
		}
		return fmt.Errorf("produce audit event: %w", err)
	}
	if _, change := s.breaker.RecordSuccess(); change.Closed && s.logger != nil {
		s.logger.InfoContext(ctx, "audit kafka sink circuit closed", "topic", s.topic)
	}
	return nil
}

func (s *Sink) Close() {
	s.client.Close()
}
