package memory

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
)

type LikeStore struct {
	db *DB
}

func (s *LikeStore) Add(ctx context.Context, filmID, userID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.films[filmID]; !ok {
		return storage.ErrReference
	}
	if _, ok := s.db.users[userID]; !ok {
		return storage.ErrReference
	}
	s.db.likes[edge{filmID, userID}] = struct{}{}
	return nil
}

func (s *LikeStore) Remove(ctx context.Context, filmID, userID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	e := edge{filmID, userID}
	if _, ok := s.db.likes[e]; !ok {
		return storage.ErrNotFound
	}
	delete(s.db.likes, e)
	return nil
}

// FriendStore keeps directed edges, see postgres FriendModel.
type FriendStore struct {
	db *DB
}

func (s *FriendStore) Add(ctx context.Context, userID, friendID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[userID]; !ok {
		return storage.ErrReference
	}
	if _, ok := s.db.users[friendID]; !ok {
		return storage.ErrReference
	}
	s.db.friends[edge{userID, friendID}] = struct{}{}
	return nil
}

func (s *FriendStore) Remove(ctx context.Context, userID, friendID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	e := edge{userID, friendID}
	if _, ok := s.db.friends[e]; !ok {
		return storage.ErrNotFound
	}
	delete(s.db.friends, e)
	return nil
}

func (s *FriendStore) List(ctx context.Context, userID int64) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	ids := targets(s.db.friends, userID)
	return s.db.usersByID(ids), nil
}

func (s *FriendStore) Common(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	other := make(map[int64]struct{})
	for _, id := range targets(s.db.friends, otherID) {
		other[id] = struct{}{}
	}
	var common []int64
	for _, id := range targets(s.db.friends, userID) {
		if _, ok := other[id]; ok {
			common = append(common, id)
		}
	}
	return s.db.usersByID(common), nil
}

func (db *DB) usersByID(ids []int64) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := db.users[id]; ok {
			out = append(out, db.resolveUser(u))
		}
	}
	return out
}
