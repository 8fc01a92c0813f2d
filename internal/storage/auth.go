package storage

import (
	"tablemenu/internal/domain"
)

func (r *PostgresRepository) CreateManager(manager *domain.Manager) error {
	return r.DB.QueryRow(`
		INSERT INTO managers (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, manager.Username, manager.PasswordHash).Scan(&manager.ID, &manager.CreatedAt)
}

func (r *PostgresRepository) GetManagerByUsername(username string) (*domain.Manager, error) {
	var manager domain.Manager
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM managers WHERE username = $1
	`, username).Scan(&manager.ID, &manager.Username, &manager.PasswordHash, &manager.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *PostgresRepository) InsertToken(token *domain.Token) error {
	return r.DB.QueryRow(`
		INSERT INTO tokens (key, manager_id)
		VALUES ($1, $2)
		RETURNING created_at
	`, token.Key, token.ManagerID).Scan(&token.CreatedAt)
}

func (r *PostgresRepository) GetToken(key string) (*domain.Token, error) {
	var token domain.Token
	err := r.DB.QueryRow(`
		SELECT key, manager_id, created_at FROM tokens WHERE key = $1
	`, key).Scan(&token.Key, &token.ManagerID, &token.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *PostgresRepository) DeleteToken(key string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM tokens WHERE key = $1", key)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
