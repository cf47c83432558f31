package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"duel-arena/engine/config"
	"duel-arena/engine/logging"
	"duel-arena/engine/match"
)

const (
	writeWait   = 10 * time.Second
	tickRate    = 30 // ticks per second
	arenaWidth  = 800.0
	arenaHeight = 600.0
	// restartDelay keeps the final snapshot on screen before the next bout.
	restartDelay = 5 * time.Second
)

type stateMessage struct {
	Type       string         `json:"type"`
	Snapshot   match.Snapshot `json:"snapshot"`
	Events     []match.Event  `json:"events,omitempty"`
	ServerTime int64          `json:"serverTime"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub owns the live exhibition match and every spectator connection.
type Hub struct {
	mu          sync.Mutex
	match       *match.Match
	subscribers map[uint64]*subscriber
	nextID      atomic.Uint64

	tuning    config.Tuning
	publisher logging.Publisher
	seed      string
	bout      int
	restartAt time.Time
}

func newHub(tuning config.Tuning, seed string, publisher logging.Publisher) (*Hub, error) {
	hub := &Hub{
		subscribers: make(map[uint64]*subscriber),
		tuning:      tuning,
		publisher:   publisher,
		seed:        seed,
	}
	if err := hub.startMatch(); err != nil {
		return nil, err
	}
	return hub, nil
}

// startMatch spins up the next exhibition bout with rotating equipment
// presets so spectators see the modifier surface in action.
func (h *Hub) startMatch() error {
	h.bout++
	presets := [][2]match.EquipmentBonuses{
		{{}, {}},
		{
			{CritChance: 0.25, CritDamage: 2.0, ArmorPen: 10},
			{Defense: 25, Reflect: 0.3, ThornDamage: 2},
		},
		{
			{BurnDamage: 3, SlowEffect: 1, SpeedBonus: 0.2},
			{Lifesteal: 0.3, LowHPBonus: 0.5, DodgeChance: 0.15},
		},
	}
	preset := presets[h.bout%len(presets)]

	bout, err := match.New(match.Config{
		MatchID:     fmt.Sprintf("exhibition-%d", h.bout),
		ArenaWidth:  arenaWidth,
		ArenaHeight: arenaHeight,
		Bonuses:     preset,
		Tuning:      &h.tuning,
		Seed:        fmt.Sprintf("%s-%d", h.seed, h.bout),
		Publisher:   h.publisher,
	})
	if err != nil {
		return fmt.Errorf("start exhibition bout: %w", err)
	}
	if h.match != nil {
		h.match.Dispose()
	}
	h.match = bout
	h.match.Start()
	return nil
}

// RunSimulation drives the hub's match at a fixed cadence until stopped.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = 1.0 / float64(tickRate)
			}
			last = now

			h.mu.Lock()
			h.match.Advance(dt)
			snapshot := h.match.Snapshot()
			events := h.match.DrainEvents()
			if h.match.Finished() {
				if h.restartAt.IsZero() {
					h.restartAt = now.Add(restartDelay)
				} else if now.After(h.restartAt) {
					if err := h.startMatch(); err != nil {
						log.Printf("restart failed: %v", err)
					}
					h.restartAt = time.Time{}
				}
			}
			h.mu.Unlock()

			h.broadcastState(snapshot, events)
		}
	}
}

// Subscribe registers a spectator connection and returns its id.
func (h *Hub) Subscribe(conn *websocket.Conn) (uint64, *subscriber) {
	id := h.nextID.Add(1)
	sub := &subscriber{conn: conn}
	h.mu.Lock()
	h.subscribers[id] = sub
	h.mu.Unlock()
	return id, sub
}

// Disconnect drops a spectator and closes its connection.
func (h *Hub) Disconnect(id uint64) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

// broadcastState sends the latest snapshot and drained events to every
// spectator.
func (h *Hub) broadcastState(snapshot match.Snapshot, events []match.Event) {
	msg := stateMessage{
		Type:       "state",
		Snapshot:   snapshot,
		Events:     events,
		ServerTime: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[uint64]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			log.Printf("failed to send update to spectator %d: %v", id, err)
			h.Disconnect(id)
		}
	}
}

// SnapshotState returns the current snapshot for HTTP polling consumers.
func (h *Hub) SnapshotState() match.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.match.Snapshot()
}
