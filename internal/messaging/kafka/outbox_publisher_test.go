package kafka

import (
	"testing"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
)

func TestOutboxPublisherTopicRouting(t *testing.T) {
	routed := &OutboxTopicPublisher{}

	if got := routed.topicFor(domain.OutboxMessage{AggregateType: "order"}); got != TopicOrderEvents {
		t.Fatalf("order events must route to %s, got %s", TopicOrderEvents, got)
	}
	if got := routed.topicFor(domain.OutboxMessage{AggregateType: "client"}); got != TopicEntityEvents {
		t.Fatalf("client events must route to %s, got %s", TopicEntityEvents, got)
	}
	if got := routed.topicFor(domain.OutboxMessage{AggregateType: "supplier"}); got != TopicEntityEvents {
		t.Fatalf("supplier events must route to %s, got %s", TopicEntityEvents, got)
	}
}

func TestOutboxPublisherPinnedTopic(t *testing.T) {
	pinned := &OutboxTopicPublisher{topic: TopicDeadLetterQueue}

	// Явно заданный topic выключает маршрутизацию, это путь DLQ-паблишера.
	if got := pinned.topicFor(domain.OutboxMessage{AggregateType: "order"}); got != TopicDeadLetterQueue {
		t.Fatalf("pinned topic must win, got %s", got)
	}
}
