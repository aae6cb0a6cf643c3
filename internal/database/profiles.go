package database

import (
	"database/sql"
	"fmt"

	"github.com/Nirvanjha2004/outflo/internal/models"
)

const profileColumns = `id, full_name, job_title, company, location, profile_url,
       profile_image_url, connection_degree, about_summary, search_query,
       created_at, updated_at`

// InsertProfileIfAbsent stores a profile unless one with the same URL already
// exists. It returns the stored record, or nil when the URL was taken (the
// existing record is left untouched). The UNIQUE constraint on profile_url
// makes this safe against concurrent writers, not just the caller's pre-check.
func (d *Database) InsertProfileIfAbsent(profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT OR IGNORE INTO profiles
		(full_name, job_title, company, location, profile_url, profile_image_url,
		 connection_degree, about_summary, search_query)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := d.db.Exec(query, profile.FullName, profile.JobTitle, profile.Company,
		profile.Location, profile.ProfileURL, profile.ProfileImageURL,
		profile.ConnectionDegree, profile.AboutSummary, profile.SearchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert result: %w", err)
	}
	if rows == 0 {
		// URL already present, nothing was written
		return nil, nil
	}

	return d.GetProfileByURL(profile.ProfileURL)
}

// GetProfileByURL retrieves a profile by its canonical URL.
// Returns ErrNotFound when no profile has that URL.
func (d *Database) GetProfileByURL(url string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_url = ?`
	return d.scanProfileRow(d.db.QueryRow(query, url))
}

// GetProfileByID retrieves a profile by its numeric identifier.
// Returns ErrNotFound when no profile has that id.
func (d *Database) GetProfileByID(id int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return d.scanProfileRow(d.db.QueryRow(query, id))
}

// SearchProfiles returns up to limit profiles. With an empty query the most
// recently created profiles come first. With a non-empty query it ranks a
// text match over name, title, company, location and summary.
func (d *Database) SearchProfiles(query string, limit int) ([]*models.Profile, error) {
	var rows *sql.Rows
	var err error

	if query == "" {
		rows, err = d.db.Query(`
			SELECT `+profileColumns+`
			FROM profiles
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		`, limit)
	} else {
		// Weighted LIKE match: name hits rank above title/company hits,
		// which rank above location/summary hits.
		pattern := "%" + query + "%"
		rows, err = d.db.Query(`
			SELECT `+profileColumns+` FROM (
				SELECT *,
				       (full_name LIKE ?) * 4 +
				       (job_title LIKE ?) * 2 +
				       (company LIKE ?) * 2 +
				       (location LIKE ?) +
				       (about_summary LIKE ?) AS relevance
				FROM profiles
			)
			WHERE relevance > 0
			ORDER BY relevance DESC, created_at DESC, id DESC
			LIMIT ?
		`, pattern, pattern, pattern, pattern, pattern, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		profile, err := d.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// DeleteProfile permanently removes a profile.
// Returns ErrNotFound when no profile has that id.
func (d *Database) DeleteProfile(id int64) error {
	result, err := d.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (d *Database) scanProfileRow(row *sql.Row) (*models.Profile, error) {
	profile, err := d.scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return profile, err
}

func (d *Database) scanProfile(row rowScanner) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID, &profile.FullName, &profile.JobTitle, &profile.Company,
		&profile.Location, &profile.ProfileURL, &profile.ProfileImageURL,
		&profile.ConnectionDegree, &profile.AboutSummary, &profile.SearchQuery,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &profile, nil
}
