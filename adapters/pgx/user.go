package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pverales/rosterd/core"
)

const userColumns = `id, username, email, first_name, last_name, phone, birth_date, bio, avatar, password_hash, is_verified, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*core.User, error) {
	user := &core.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.FirstName, &user.LastName,
		&user.Phone, &user.BirthDate, &user.Bio, &user.Avatar,
		&user.PasswordHash, &user.IsVerified, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) CreateUser(user *core.User) error {
	ctx := context.Background()

	query := `INSERT INTO public.users (username, email, first_name, last_name, phone, birth_date, bio, avatar, password_hash, is_verified, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`

	var id int64
	var createdAt, updatedAt time.Time

	err := a.pool.QueryRow(ctx, query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.Phone, user.BirthDate, user.Bio, user.Avatar,
		user.PasswordHash, user.IsVerified, user.IsActive,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}

	user.ID = id
	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetUserByID(id int64) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`
	return scanUser(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) GetUserByUsername(username string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE username = $1`
	return scanUser(a.pool.QueryRow(ctx, q, username))
}

func (a *Adapter) ListUsers() ([]*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users ORDER BY created_at DESC, id DESC`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser persists profile fields and flags. Username, email, the
// password hash and created_at are deliberately not part of the statement.
func (a *Adapter) UpdateUser(user *core.User) error {
	ctx := context.Background()
	q := `UPDATE public.users
	      SET first_name = $1, last_name = $2, phone = $3, birth_date = $4, bio = $5, avatar = $6, is_verified = $7, is_active = $8, updated_at = now()
	      WHERE id = $9 RETURNING updated_at`

	var updatedAt time.Time
	err := a.pool.QueryRow(ctx, q,
		user.FirstName, user.LastName, user.Phone, user.BirthDate,
		user.Bio, user.Avatar, user.IsVerified, user.IsActive, user.ID,
	).Scan(&updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return core.ErrUserNotFound
		}
		return err
	}
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) DeleteUser(id int64) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}
