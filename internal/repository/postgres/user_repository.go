package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/domain"
	"github.com/erdoganeray/travelApp/internal/domain/repository"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "email", "password_hash", "name", "preferences", "created_at", "updated_at"}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Preferences  []byte    `db:"preferences"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() (*domain.User, error) {
	prefs := map[string]interface{}{}
	if len(r.Preferences) > 0 {
		if err := json.Unmarshal(r.Preferences, &prefs); err != nil {
			return nil, fmt.Errorf("decode preferences: %w", err)
		}
	}
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Preferences:  prefs,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}, nil
}

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	prefs, err := encodePreferences(user.Preferences)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Name, prefs, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.db.logger.Debug("Insert user failed", zap.String("email", user.Email), zap.Error(err))
		return mapError(err, "insert user")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "get user by id")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"lower(email)": strings.ToLower(email)}, "get user by email")
}

func (r *userRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	return r.update(ctx, id, psql.Update("users").Set("name", name), "update user name")
}

// MergePreferences - слияние одним UPDATE через jsonb ||, без чтения текущих настроек
func (r *userRepository) MergePreferences(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*domain.User, error) {
	prefs, err := encodePreferences(patch)
	if err != nil {
		return nil, err
	}
	merge := sq.Expr("COALESCE(preferences, '{}'::jsonb) || ?::jsonb", prefs)
	return r.update(ctx, id, psql.Update("users").Set("preferences", merge), "merge user preferences")
}

func (r *userRepository) getOne(ctx context.Context, where sq.Eq, op string) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, mapError(err, op)
	}
	return row.toDomain()
}

func (r *userRepository) update(ctx context.Context, id uuid.UUID, b sq.UpdateBuilder, op string) (*domain.User, error) {
	query, args, err := b.
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, mapError(err, op)
	}
	return row.toDomain()
}

// encodePreferences returns JSON text; text binds to jsonb under both pgx and lib/pq.
func encodePreferences(p map[string]interface{}) (string, error) {
	if p == nil {
		p = map[string]interface{}{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode preferences: %w", err)
	}
	return string(b), nil
}
