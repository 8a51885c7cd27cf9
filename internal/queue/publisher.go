package queue

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/bmi-calculator/internal/config"
)

// Publisher sends evaluation events somewhere.  Errors are returned so the
// caller can log them; an evaluation never fails because of a publisher.
type Publisher interface {
    Publish(ctx context.Context, ev EvaluationEvent) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, EvaluationEvent) error { return nil }

// AMQPPublisher publishes events to a durable RabbitMQ queue.  A
// connection is opened per publish; evaluations are user-paced and rare.
type AMQPPublisher struct {
    url     string
    queue   string
    timeout time.Duration
}

// NewPublisher returns an AMQPPublisher when publishing is enabled and a
// NopPublisher otherwise.
func NewPublisher(cfg config.QueueConfig) Publisher {
    if !cfg.Enabled {
        return NopPublisher{}
    }
    return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue, timeout: cfg.PublishTimeout}
}

// Publish declares the queue (idempotent) and sends ev as persistent JSON.
func (p *AMQPPublisher) Publish(ctx context.Context, ev EvaluationEvent) error {
    if p.timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, p.timeout)
        defer cancel()
    }

    conn, err := dial(ctx, p.url, p.timeout)
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := declareQueue(ch, p.queue); err != nil {
        log.Warn().Err(err).Str("queue", p.queue).Msg("rabbitmq: queue declare failed")
        return err
    }

    pub, err := encodeEvent(ev, time.Now())
    if err != nil {
        return err
    }

    if err := ch.PublishWithContext(ctx,
        "",      // default exchange
        p.queue, // routing key = queue name
        false,   // mandatory
        false,   // immediate
        pub,
    ); err != nil {
        log.Warn().Err(err).Str("queue", p.queue).Msg("rabbitmq: publish failed")
        return err
    }
    return nil
}

// defaultDialTimeout bounds a dial when neither the caller nor the config
// gives a shorter limit.
const defaultDialTimeout = 10 * time.Second

// dial opens a connection whose TCP connect and AMQP handshake together are
// bounded by timeout or by ctx's deadline, whichever comes first.
func dial(ctx context.Context, url string, timeout time.Duration) (*amqp.Connection, error) {
    if timeout <= 0 {
        timeout = defaultDialTimeout
    }
    if deadline, ok := ctx.Deadline(); ok {
        if left := time.Until(deadline); left < timeout {
            timeout = left
        }
    }
    if timeout <= 0 {
        return nil, context.DeadlineExceeded
    }
    return amqp.DialConfig(url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(timeout),
    })
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
    return ch.QueueDeclare(
        name,  // name
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,   // args
    )
}

func encodeEvent(ev EvaluationEvent, now time.Time) (amqp.Publishing, error) {
    body, err := json.Marshal(ev)
    if err != nil {
        return amqp.Publishing{}, err
    }
    return amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    now.UTC(),
        Body:         body,
    }, nil
}
