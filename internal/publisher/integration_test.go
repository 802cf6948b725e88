//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"storyfeed/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublish_DeliversStoryMessage() {
	pub, err := NewRabbitMQ(Config{
		URL:        s.amqpURL,
		Exchange:   "storyfeed_test",
		RoutingKey: "stories",
		QueueName:  "cached_stories_test",
	}, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	name := "User 1"
	story := domain.Story{ID: "story-1", Name: &name}
	s.Require().NoError(pub.Publish(s.ctx, &story))

	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deliveries, err := ch.Consume("cached_stories_test", "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case delivery := <-deliveries:
		var msg StoryMessage
		s.Require().NoError(json.Unmarshal(delivery.Body, &msg))
		s.Equal("cached", msg.Action)
		s.Equal("story-1", msg.Story.ID)
		s.Require().NotNil(msg.Story.Name)
		s.Equal("User 1", *msg.Story.Name)
	case <-time.After(10 * time.Second):
		s.Fail("no message delivered")
	}
}
