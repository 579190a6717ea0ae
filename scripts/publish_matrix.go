//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	requestStream  = "stream:asgard:matrix:request"
	responseStream = "stream:asgard:matrix:response"
)

type location struct {
	Place string `json:"place"`
}

type matrixRequest struct {
	RequestedAPI    string `json:"requested_api"`
	SNRoutingMatrix struct {
		Origins      []location `json:"origins"`
		Destinations []location `json:"destinations"`
		Mode         string     `json:"mode"`
		Speed        float64    `json:"speed"`
		MaxDuration  uint32     `json:"max_duration"`
	} `json:"sn_routing_matrix"`
}

type requestEvent struct {
	RequestID uuid.UUID     `json:"request_id"`
	Request   matrixRequest `json:"request"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	mode := flag.String("mode", "walking", "walking, bike or car")
	speed := flag.Float64("speed", 1.12, "speed in m/s")
	maxDuration := flag.Uint("max-duration", 1800, "max duration in seconds")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Paris, Gare de Lyon -> Bastille, Nation
	event := requestEvent{RequestID: uuid.New()}
	event.Request.RequestedAPI = "street_network_routing_matrix"
	event.Request.SNRoutingMatrix.Origins = []location{{Place: "2.3731;48.8443"}}
	event.Request.SNRoutingMatrix.Destinations = []location{{Place: "2.3690;48.8531"}, {Place: "coord:2.3958:48.8484"}}
	event.Request.SNRoutingMatrix.Mode = *mode
	event.Request.SNRoutingMatrix.Speed = *speed
	event.Request.SNRoutingMatrix.MaxDuration = uint32(*maxDuration)

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем конец стрима ответов до публикации
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, responseStream, "+", "-", 1).Result(); err == nil && len(last) == 1 {
		lastID = last[0].ID
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: requestStream,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish request: %v", err)
	}

	fmt.Printf("Request published: stream=%s message_id=%s request_id=%s\n", requestStream, id, event.RequestID)
	fmt.Printf("Waiting for response in %s...\n", responseStream)

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{responseStream, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read responses: %v", err)
		}

		for _, s := range results {
			for _, msg := range s.Messages {
				lastID = msg.ID
				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var reply map[string]interface{}
				if err := json.Unmarshal([]byte(raw), &reply); err != nil {
					continue
				}
				if reply["request_id"] == event.RequestID.String() {
					pretty, _ := json.MarshalIndent(reply, "", "  ")
					fmt.Printf("Response received:\n%s\n", pretty)
					return
				}
			}
		}
	}

	fmt.Println("Timeout waiting for response")
}
