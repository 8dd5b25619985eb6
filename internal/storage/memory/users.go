package memory

import (
	"context"
	"filmorate/proj/internal/domain/models"
	"filmorate/proj/internal/storage"
)

type UserStore struct {
	db *DB
}

func (s *UserStore) Get(ctx context.Context, id int64) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	user, ok := s.db.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := s.db.resolveUser(user)
	return &out, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]models.User, 0, len(s.db.users))
	for _, id := range sortedKeys(s.db.users) {
		out = append(out, s.db.resolveUser(s.db.users[id]))
	}
	return out, nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.duplicate(user) {
		return nil, storage.ErrConflict
	}
	stored := *user
	stored.ID = s.db.nextUserID
	s.db.nextUserID++
	s.db.users[stored.ID] = stored
	out := s.db.resolveUser(stored)
	return &out, nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[user.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	if s.db.duplicate(user) {
		return nil, storage.ErrConflict
	}
	s.db.users[user.ID] = *user
	out := s.db.resolveUser(*user)
	return &out, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.db.users, id)
	for e := range s.db.friends {
		if e.from == id || e.to == id {
			delete(s.db.friends, e)
		}
	}
	for e := range s.db.likes {
		if e.to == id {
			delete(s.db.likes, e)
		}
	}
	return nil
}

// duplicate reports whether another user already owns the email or login.
func (db *DB) duplicate(user *models.User) bool {
	for id, u := range db.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email || u.Login == user.Login {
			return true
		}
	}
	return false
}

func (db *DB) resolveUser(user models.User) models.User {
	user.Friends = targets(db.friends, user.ID)
	return user
}
