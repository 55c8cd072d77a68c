package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pverales/rosterd/core"
)

func (a *Adapter) CreateSession(s *core.Session) error {
	ctx := context.Background()

	query := `INSERT INTO public.sessions (id, user_id, token_hash, ip_address, user_agent, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at`

	var createdAt time.Time
	err := a.pool.QueryRow(ctx, query,
		s.ID, s.UserID, s.TokenHash, s.IPAddress, s.UserAgent, s.ExpiresAt,
	).Scan(&createdAt)
	if err != nil {
		return err
	}

	s.CreatedAt = createdAt
	return nil
}

func (a *Adapter) GetSessionByHash(tokenHash string) (*core.Session, error) {
	ctx := context.Background()
	q := `SELECT id, user_id, token_hash, ip_address, user_agent, expires_at, created_at
	      FROM public.sessions WHERE token_hash = $1`

	s := &core.Session{}
	err := a.pool.QueryRow(ctx, q, tokenHash).Scan(
		&s.ID, &s.UserID, &s.TokenHash, &s.IPAddress, &s.UserAgent, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (a *Adapter) DeleteSessionByHash(tokenHash string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.sessions WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrSessionNotFound
	}
	return nil
}

func (a *Adapter) DeleteExpiredSessions() (int, error) {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
