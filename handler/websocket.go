package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"cinema_ops/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	seatClients = make(map[uint]map[*websocket.Conn]bool)
	seatMutex   sync.Mutex
)

func Redis() *redis.Client {
	redisOnce.Do(func() {
		addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

func screeningChannel(screeningId uint) string {
	return fmt.Sprintf("screening:%d", screeningId)
}

// PublishSeatState pushes the full grouped seat state of a screening onto
// its redis channel; subscribed sockets fan it out to clients.
func PublishSeatState(screeningId uint) {
	seats, err := FetchScreeningSeats(screeningId)
	if err != nil {
		log.Printf("seat state publish (screening %d): %v", screeningId, err)
		return
	}
	payload, err := json.Marshal(seats)
	if err != nil {
		log.Printf("seat state marshal: %v", err)
		return
	}
	if err := Redis().Publish(context.Background(), screeningChannel(screeningId), payload).Err(); err != nil {
		log.Printf("seat state publish: %v", err)
	}
}

// SeatWebsocket streams live seat-state updates for one screening.
func SeatWebsocket(c *websocket.Conn) {
	idStr := c.Params("screeningId")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		log.Printf("invalid screeningId: %s", idStr)
		c.Close()
		return
	}
	screeningId := uint(id64)

	seatMutex.Lock()
	if seatClients[screeningId] == nil {
		seatClients[screeningId] = make(map[*websocket.Conn]bool)
	}
	seatClients[screeningId][c] = true
	seatMutex.Unlock()

	defer func() {
		seatMutex.Lock()
		delete(seatClients[screeningId], c)
		if len(seatClients[screeningId]) == 0 {
			delete(seatClients, screeningId)
		}
		seatMutex.Unlock()
		c.Close()
	}()

	// Current state straight away for the newly connected client.
	if seats, err := FetchScreeningSeats(screeningId); err == nil {
		c.WriteJSON(seats)
	}

	pubsub := Redis().Subscribe(context.Background(), screeningChannel(screeningId))
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		seatMutex.Lock()
		for conn := range seatClients[screeningId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(seatClients[screeningId], conn)
			}
		}
		seatMutex.Unlock()
	}
}
