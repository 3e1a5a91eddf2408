package queue_test

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/yeisme/schoolvault/pkg/queue"
)

// capturePublisher 记录发布的主题与消息，供断言.
type capturePublisher struct {
	topics []string
	msgs   []*message.Message
}

func (p *capturePublisher) Publish(topic string, msgs ...*message.Message) error {
	for range msgs {
		p.topics = append(p.topics, topic)
	}
	p.msgs = append(p.msgs, msgs...)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

// TestNewWatermillMessage 测试消息构造与元数据设置.
func TestNewWatermillMessage(t *testing.T) {
	payload := queue.ContentEventPayload{
		Content: queue.ContentRef{Type: "news", ID: 42, Title: "Sports Day"},
		Actor:   "admin",
	}

	msg, err := queue.NewWatermillMessage(
		queue.TopicContentCreated, payload,
		queue.WithTraceID("trace-xyz"),
		queue.WithProducer("schoolvault"),
	)
	if err != nil {
		t.Fatalf("NewWatermillMessage failed: %v", err)
	}

	if msg.UUID == "" {
		t.Error("expected non-empty message UUID")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicContentCreated {
		t.Errorf("topic metadata = %q, want %q", got, queue.TopicContentCreated)
	}

	if got := msg.Metadata.Get("trace_id"); got != "trace-xyz" {
		t.Errorf("trace_id metadata = %q, want %q", got, "trace-xyz")
	}

	env, err := queue.ParseContentEvent(msg)
	if err != nil {
		t.Fatalf("ParseContentEvent failed: %v", err)
	}

	if env.Header.Topic != queue.TopicContentCreated {
		t.Errorf("header topic = %q, want %q", env.Header.Topic, queue.TopicContentCreated)
	}

	if env.Payload.Content.ID != 42 || env.Payload.Content.Type != "news" {
		t.Errorf("payload mismatch: %+v", env.Payload)
	}

	if env.Header.Version != queue.PayloadVersionV1 {
		t.Errorf("version = %q, want %q", env.Header.Version, queue.PayloadVersionV1)
	}
}

// TestPublishRoundTrip 测试发布函数写对主题，消息能解析回强类型信封.
func TestPublishRoundTrip(t *testing.T) {
	pub := &capturePublisher{}

	content := queue.ContentEventPayload{
		Content: queue.ContentRef{Type: "album", ID: 7, Title: "Field Trip"},
	}
	if err := queue.PublishContentUpdated(pub, content); err != nil {
		t.Fatalf("PublishContentUpdated failed: %v", err)
	}

	stored := queue.UploadStoredPayload{
		Upload:   queue.UploadRef{StorageKey: "images/trip_01.png", URL: "http://localhost:8080/uploads/images/trip_01.png"},
		FileName: "trip.png",
	}
	if err := queue.PublishUploadStored(pub, stored); err != nil {
		t.Fatalf("PublishUploadStored failed: %v", err)
	}

	if len(pub.msgs) != 2 {
		t.Fatalf("expected 2 published messages, got %d", len(pub.msgs))
	}
	if pub.topics[0] != queue.TopicContentUpdated || pub.topics[1] != queue.TopicUploadStored {
		t.Errorf("unexpected topics: %v", pub.topics)
	}

	contentEnv, err := queue.ParseContentEvent(pub.msgs[0])
	if err != nil {
		t.Fatalf("ParseContentEvent failed: %v", err)
	}
	if contentEnv.Payload.Content.ID != 7 || contentEnv.Payload.Content.Type != "album" {
		t.Errorf("content payload mismatch: %+v", contentEnv.Payload)
	}

	storedEnv, err := queue.ParseUploadStored(pub.msgs[1])
	if err != nil {
		t.Fatalf("ParseUploadStored failed: %v", err)
	}
	if storedEnv.Header.Topic != queue.TopicUploadStored {
		t.Errorf("header topic = %q, want %q", storedEnv.Header.Topic, queue.TopicUploadStored)
	}
	if storedEnv.Payload.Upload.StorageKey != "images/trip_01.png" || storedEnv.Payload.FileName != "trip.png" {
		t.Errorf("upload payload mismatch: %+v", storedEnv.Payload)
	}
}
