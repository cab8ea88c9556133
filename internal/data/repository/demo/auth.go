package demo

import (
	"context"

	"coffee-house/internal/data/entity"

	"github.com/google/uuid"
)

type userRepo struct {
	s *store
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

type sessionRepo struct {
	s *store
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.Token] = *session
	return nil
}

func (r *sessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.sessions[tokenID]
	if !ok {
		return nil, nil
	}
	if session.RevokedAt != nil || session.ExpiresAt.Before(now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, token string) error {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return errNotFound("session")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[tokenID]
	if !ok || session.RevokedAt != nil {
		return errNotFound("session")
	}
	revoked := now()
	session.RevokedAt = &revoked
	r.s.sessions[tokenID] = session
	return nil
}
