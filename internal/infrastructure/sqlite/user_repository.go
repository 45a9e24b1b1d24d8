package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-desktop/internal/domain"
	"github.com/tu-usuario/inventario-desktop/internal/domain/entity"
	"github.com/tu-usuario/inventario-desktop/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario y asigna el id generado.
func (r *UserRepo) Create(user *entity.User) error {
	res, err := r.db.Exec(
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		user.Username, user.PasswordHash, string(user.Role),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de user insertado: %w", err)
	}
	user.ID = id
	return nil
}

// FindByUsername obtiene un usuario por nombre exacto, nil si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	row := r.db.QueryRow(
		`SELECT id, username, password_hash, role, last_login FROM users WHERE username = ?`,
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// TouchLastLogin estampa la fecha del último inicio de sesión.
func (r *UserRepo) TouchLastLogin(id int64, at time.Time) error {
	_, err := r.db.Exec(`UPDATE users SET last_login = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios ordenados por id.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.db.Query(
		`SELECT id, username, password_hash, role, last_login FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count devuelve la cantidad de usuarios (para el sembrado inicial).
func (r *UserRepo) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u         entity.User
		role      string
		lastLogin sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &lastLogin); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	if lastLogin.Valid {
		t := parseTime(lastLogin)
		u.LastLogin = &t
	}
	return &u, nil
}
