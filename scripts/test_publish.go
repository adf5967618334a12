// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// adminEvent повторяет формат событий stream:admin:events
type adminEvent struct {
	ID         uuid.UUID `json:"id"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Fields     []string  `json:"fields,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	resource := flag.String("resource", "booking", "booking, location or transport")
	action := flag.String("action", "create", "create, update or delete")
	entityID := flag.String("entity", "", "entity id, random when empty")
	poison := flag.Bool("poison", false, "publish a malformed message")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	id := *entityID
	if id == "" {
		id = "test-" + uuid.NewString()[:8]
	}

	data := []byte("{not json")
	if !*poison {
		event := adminEvent{
			ID:         uuid.New(),
			Resource:   *resource,
			Action:     *action,
			EntityID:   id,
			SessionID:  "script",
			Fields:     []string{"booking_date", "status"},
			OccurredAt: time.Now().UTC(),
		}
		var err error
		data, err = json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:admin:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published message %s\n", result)
	fmt.Printf("Payload: %s\n", data)
}
