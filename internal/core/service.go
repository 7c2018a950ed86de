package core

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/models"
)

// SeedEntity is an entity spawned when the service starts
type SeedEntity struct {
	Name     string
	Category models.Category
}

type SimService struct {
	state    *WorldState
	eventBus *eventbus.EventBus
	seed     []SeedEntity
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool

	pushMu        sync.Mutex
	lastSentCount int   // Track how many created entities we've sent to UI
	deferred      error // Last failed push, reported with the next delivery
}

func NewSimService(state *WorldState, eb *eventbus.EventBus, seed []SeedEntity) *SimService {
	ctx, cancel := context.WithCancel(context.Background())
	return &SimService{
		state:    state,
		eventBus: eb,
		seed:     seed,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start spawns the seed world and runs the core logic in a goroutine
func (s *SimService) Start() {
	for _, e := range s.seed {
		s.state.Spawn(e.Name, e.Category)
	}
	s.pushStateToUI()
	s.started = true
	go s.eventLoop()
}

// Stop cancels the event loop and waits for it to exit
func (s *SimService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
}

func (s *SimService) eventLoop() {
	defer close(s.done)

	// A full bus defers delivery; retry until the UI has caught up
	retry := time.NewTicker(250 * time.Millisecond)
	defer retry.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-retry.C:
			s.Flush()
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *SimService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.CreateEntityEvent:
		entity := s.state.Spawn(e.Name, e.Category)
		log.Printf("spawned %s %q (id %d)", entity.Category, entity.DisplayName, entity.ID)
	}
	s.pushStateToUI()
}

// Flush retries delivery of entities a previous push could not send
func (s *SimService) Flush() {
	if s.state.CreatedCount() > s.sentCount() {
		s.pushStateToUI()
	}
}

func (s *SimService) sentCount() int {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	return s.lastSentCount
}

func (s *SimService) pushStateToUI() {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()

	// Only send new entities; the cursor moves only once the UI has them
	created, next := s.state.CreatedSince(s.lastSentCount)
	var deferred error
	if s.deferred != nil {
		deferred = fmt.Errorf("delivery delayed: %w", s.deferred)
	}
	err := s.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Created:    created,
		Characters: s.state.Count(models.Character),
		Items:      s.state.Count(models.Item),
		Error:      deferred,
	})
	if err != nil {
		log.Printf("Error sending state to UI: %v", err)
		s.deferred = err
		return
	}
	s.lastSentCount = next
	s.deferred = nil
}

func (s *SimService) IsReady() bool {
	return s.started && s.ctx.Err() == nil
}
