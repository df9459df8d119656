// +build ignore

// Manual smoke test for the calendar worker: publishes a culture-created
// event to the stream and prints the message ID. Run the worker alongside
// and check the calendar_events table afterwards.
//
//	go run scripts/test_publish.go -redis localhost:6379 -culture 1 -bed 1

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

type CultureCreatedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	CultureID int64     `json:"culture_id"`
	BedID     int64     `json:"bed_id"`
	StartDate time.Time `json:"start_date"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	cultureID := flag.Int64("culture", 1, "Culture ID to schedule")
	bedID := flag.Int64("bed", 1, "Bed the culture is planted on")
	startDate := flag.String("start", "", "Planting date (YYYY-MM-DD), defaults to today")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	planted := time.Now().Truncate(24 * time.Hour)
	if *startDate != "" {
		parsed, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			log.Fatalf("Invalid start date: %v", err)
		}
		planted = parsed
	}

	event := CultureCreatedEvent{
		EventID:   uuid.New(),
		CultureID: *cultureID,
		BedID:     *bedID,
		StartDate: planted,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:garden:culture:created",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:garden:culture:created\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Culture ID: %d (bed %d)\n", event.CultureID, event.BedID)
	fmt.Printf("   Start date: %s\n", planted.Format("2006-01-02"))
	fmt.Printf("\nCheck calendar_events for culture %d once the worker picks it up.\n", event.CultureID)
}
