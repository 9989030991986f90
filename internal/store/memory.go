package store

import (
	"context"
	"sort"
	"sync"

	"cricket-app/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	players map[int64]model.Player
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[int64]model.Player)}
}

func (s *MemoryStore) ListPlayers(_ context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *MemoryStore) GetPlayer(_ context.Context, id int64) (model.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return model.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (s *MemoryStore) CreatePlayer(_ context.Context, player model.Player) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	player.ID = s.nextID
	player = clonePlayer(player)
	s.players[player.ID] = player
	return clonePlayer(player), nil
}

func (s *MemoryStore) UpdatePlayer(_ context.Context, player model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[player.ID]; !ok {
		return nil
	}
	s.players[player.ID] = clonePlayer(player)
	return nil
}

func (s *MemoryStore) DeletePlayer(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.players, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// clonePlayer copies the pointer fields so callers cannot mutate stored rows.
func clonePlayer(p model.Player) model.Player {
	out := model.Player{ID: p.ID}
	if p.Name != nil {
		out.Name = model.StringPtr(*p.Name)
	}
	if p.JerseyNumber != nil {
		out.JerseyNumber = model.Int64Ptr(*p.JerseyNumber)
	}
	if p.Role != nil {
		out.Role = model.StringPtr(*p.Role)
	}
	return out
}
