package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"communityhub/internal/model"
	"communityhub/internal/pkg"
)

// Sender delivers one outbox event.
type Sender func(ctx context.Context, ob *model.MembershipOutbox) error

// OutboxRelayer drains pending membership events and hands them to a sender.
type OutboxRelayer struct {
	repo      OutboxStore
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(repo OutboxStore, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 100,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// LogSender is the fallback when no broker is configured.
func LogSender(ctx context.Context, ob *model.MembershipOutbox) error {
	log.Printf("OUTBOX SEND type=%s community=%s user=%s payload=%s",
		ob.EventType, ob.CommunityID, ob.UserID, ob.Payload)
	return nil
}

// KafkaSender publishes events keyed by community id.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.MembershipOutbox) error {
		return producer.Send(ctx, ob.CommunityID, []byte(ob.Payload))
	}
}

func newOutboxEvent(eventType, communityID, userID string) (*model.MembershipOutbox, error) {
	id, err := pkg.NewID()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(map[string]any{
		"event":      eventType,
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"community":  communityID,
		"user":       userID,
	})
	if err != nil {
		return nil, err
	}
	return &model.MembershipOutbox{
		ID:          id,
		EventType:   eventType,
		CommunityID: communityID,
		UserID:      userID,
		Payload:     string(payload),
	}, nil
}
