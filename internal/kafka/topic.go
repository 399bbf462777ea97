package kafka

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	topicDialTimeout = 10 * time.Second
	topicReadyWait   = 10 * time.Second
	topicPollEvery   = 500 * time.Millisecond
)

var (
	ErrNoBrokers  = errors.New("no kafka brokers configured")
	ErrEmptyTopic = errors.New("empty topic")
)

type TopicSpec struct {
	Name              string
	Partitions        int
	ReplicationFactor int
}

func (s TopicSpec) withDefaults() (TopicSpec, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return s, ErrEmptyTopic
	}
	s.Partitions = max(s.Partitions, 1)
	s.ReplicationFactor = max(s.ReplicationFactor, 1)
	return s, nil
}

// EnsureTopic creates the topic on the controller when it is missing and
// waits until its partitions show up in metadata.
func EnsureTopic(ctx context.Context, brokers []string, spec TopicSpec, log *zap.Logger) error {
	if len(brokers) == 0 {
		return ErrNoBrokers
	}
	spec, err := spec.withDefaults()
	if err != nil {
		return err
	}

	dialer := &kafkago.Dialer{Timeout: topicDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	if parts, err := conn.ReadPartitions(spec.Name); err == nil && len(parts) > 0 {
		log.Debug("usage topic already present", zap.String("topic", spec.Name), zap.Int("partitions", len(parts)))
		return nil
	}

	if err := createOnController(ctx, dialer, conn, spec, log); err != nil {
		return err
	}
	return waitForPartitions(ctx, conn, spec, log)
}

func createOnController(ctx context.Context, dialer *kafkago.Dialer, conn *kafkago.Conn, spec TopicSpec, log *zap.Logger) error {
	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get controller: %w", err)
	}
	addr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	ctrl, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial controller %s: %w", addr, err)
	}
	defer ctrl.Close()

	log.Info("Creating usage topic",
		zap.String("topic", spec.Name),
		zap.Int("partitions", spec.Partitions),
		zap.Int("replication", spec.ReplicationFactor),
	)
	err = ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             spec.Name,
		NumPartitions:     spec.Partitions,
		ReplicationFactor: spec.ReplicationFactor,
	})
	// a concurrent creator may have won the race
	if err != nil && !errors.Is(err, kafkago.TopicAlreadyExists) {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func waitForPartitions(ctx context.Context, conn *kafkago.Conn, spec TopicSpec, log *zap.Logger) error {
	waitCtx, cancel := context.WithTimeout(ctx, topicReadyWait)
	defer cancel()
	tick := time.NewTicker(topicPollEvery)
	defer tick.Stop()

	for {
		parts, err := conn.ReadPartitions(spec.Name)
		if err == nil && len(parts) >= spec.Partitions {
			log.Info("Usage topic ready", zap.String("topic", spec.Name), zap.Int("partitions", len(parts)))
			return nil
		}
		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("topic %s not visible after creation", spec.Name)
		case <-tick.C:
		}
	}
}
