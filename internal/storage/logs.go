package storage

import (
	"encoding/json"

	"tablemenu/internal/domain"
)

func (r *PostgresRepository) InsertVisitorLog(entry *domain.VisitorLog) error {
	return r.DB.QueryRow(`
		INSERT INTO visitor_logs
			(visitor_type, session_id, ip_address, user_agent, referrer,
			 page_visited, table_number, qr_code_id, duration)
		VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9)
		RETURNING id, created_at
	`, entry.VisitorType, entry.SessionID, entry.IPAddress, entry.UserAgent, entry.Referrer,
		entry.PageVisited, entry.TableNumber, entry.QRCodeID, entry.Duration,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *PostgresRepository) ListVisitorLogs(limit, offset int) ([]domain.VisitorLog, int, error) {
	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM visitor_logs").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, visitor_type, COALESCE(session_id, ''), COALESCE(ip_address, ''),
		       COALESCE(user_agent, ''), COALESCE(referrer, ''), page_visited,
		       COALESCE(table_number, ''), qr_code_id, duration, created_at
		FROM visitor_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []domain.VisitorLog
	for rows.Next() {
		var entry domain.VisitorLog
		if err := rows.Scan(&entry.ID, &entry.VisitorType, &entry.SessionID, &entry.IPAddress,
			&entry.UserAgent, &entry.Referrer, &entry.PageVisited,
			&entry.TableNumber, &entry.QRCodeID, &entry.Duration, &entry.CreatedAt); err != nil {
			continue
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}

func (r *PostgresRepository) InsertActivityLog(entry *domain.ActivityLog) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	var occurredAt interface{}
	if !entry.CreatedAt.IsZero() {
		occurredAt = entry.CreatedAt
	}
	return r.DB.QueryRow(`
		INSERT INTO activity_logs (activity_type, manager_id, details, created_at)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, NOW()))
		RETURNING id, created_at
	`, entry.ActivityType, entry.ManagerID, details, occurredAt).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *PostgresRepository) ListActivityLogs(limit, offset int) ([]domain.ActivityLog, int, error) {
	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM activity_logs").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, activity_type, manager_id, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []domain.ActivityLog
	for rows.Next() {
		var entry domain.ActivityLog
		var details []byte
		if err := rows.Scan(&entry.ID, &entry.ActivityType, &entry.ManagerID, &details, &entry.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			entry.Details = map[string]string{}
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}
