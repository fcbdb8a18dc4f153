package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreatePerson inserts a new person.
func (db *DB) CreatePerson(ctx context.Context, p *Person) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO people (id, full_name, department, created_at)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.FullName, NullString(p.Department), p.CreatedAt)
	return err
}

// FindPerson retrieves a person by ID or full name (case-insensitive).
func (db *DB) FindPerson(ctx context.Context, idOrName string) (*Person, error) {
	p := &Person{}
	var department sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, full_name, department, created_at
		FROM people
		WHERE id = ? OR LOWER(full_name) = LOWER(?)
		LIMIT 1
	`, idOrName, idOrName).Scan(&p.ID, &p.FullName, &department, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Department = StringPtr(department)
	return p, nil
}

// ListPeople retrieves all people ordered by name.
func (db *DB) ListPeople(ctx context.Context) ([]Person, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, full_name, department, created_at
		FROM people ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		p := Person{}
		var department sql.NullString

		if err := rows.Scan(&p.ID, &p.FullName, &department, &p.CreatedAt); err != nil {
			return nil, err
		}

		p.Department = StringPtr(department)
		people = append(people, p)
	}

	return people, rows.Err()
}

// CreateProject inserts a new project.
func (db *DB) CreateProject(ctx context.Context, p *Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Stage == "" {
		p.Stage = "idea"
	}
	p.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, person_id, title, abstract, stage, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.PersonID, p.Title, NullString(p.Abstract), p.Stage,
		NullString(p.StartDate), NullString(p.EndDate), p.CreatedAt,
	)
	return err
}

// ProjectsForPerson retrieves all projects belonging to a person.
func (db *DB) ProjectsForPerson(ctx context.Context, personID string) ([]Project, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, person_id, title, abstract, stage, start_date, end_date, created_at
		FROM projects WHERE person_id = ?
		ORDER BY created_at
	`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p := Project{}
		var abstract, startDate, endDate sql.NullString

		if err := rows.Scan(
			&p.ID, &p.PersonID, &p.Title, &abstract, &p.Stage,
			&startDate, &endDate, &p.CreatedAt,
		); err != nil {
			return nil, err
		}

		p.Abstract = StringPtr(abstract)
		p.StartDate = StringPtr(startDate)
		p.EndDate = StringPtr(endDate)
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// CreatePublication inserts a new publication.
func (db *DB) CreatePublication(ctx context.Context, p *Publication) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO publications (id, person_id, title, topic, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.PersonID, p.Title, NullString(p.Topic), NullInt64(p.Year), p.CreatedAt)
	return err
}

// PublicationsForPerson retrieves all publications authored by a person.
func (db *DB) PublicationsForPerson(ctx context.Context, personID string) ([]Publication, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, person_id, title, topic, year, created_at
		FROM publications WHERE person_id = ?
		ORDER BY created_at
	`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publications []Publication
	for rows.Next() {
		p := Publication{}
		var topic sql.NullString
		var year sql.NullInt64

		if err := rows.Scan(&p.ID, &p.PersonID, &p.Title, &topic, &year, &p.CreatedAt); err != nil {
			return nil, err
		}

		p.Topic = StringPtr(topic)
		p.Year = IntPtr(year)
		publications = append(publications, p)
	}

	return publications, rows.Err()
}

// CreateGrantRecord inserts a new grant history record.
func (db *DB) CreateGrantRecord(ctx context.Context, g *GrantRecord) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO grant_history (id, person_id, agency, mechanism, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.ID, g.PersonID, NullString(g.Agency), NullString(g.Mechanism), NullString(g.Status), g.CreatedAt)
	return err
}

// GrantHistoryForPerson retrieves all grant records associated with a person.
func (db *DB) GrantHistoryForPerson(ctx context.Context, personID string) ([]GrantRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, person_id, agency, mechanism, status, created_at
		FROM grant_history WHERE person_id = ?
		ORDER BY created_at
	`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []GrantRecord
	for rows.Next() {
		g := GrantRecord{}
		var agency, mechanism, status sql.NullString

		if err := rows.Scan(&g.ID, &g.PersonID, &agency, &mechanism, &status, &g.CreatedAt); err != nil {
			return nil, err
		}

		g.Agency = StringPtr(agency)
		g.Mechanism = StringPtr(mechanism)
		g.Status = StringPtr(status)
		records = append(records, g)
	}

	return records, rows.Err()
}

// UpsertOpportunity inserts a funding opportunity, replacing an existing row
// with the same opportunity number so repeated imports stay idempotent.
func (db *DB) UpsertOpportunity(ctx context.Context, o *Opportunity) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO opportunities (
			id, opportunity_number, title, description, agency_code, agency_name,
			mechanism, opp_status, open_date, close_date, post_date, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(opportunity_number) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			agency_code = excluded.agency_code,
			agency_name = excluded.agency_name,
			mechanism = excluded.mechanism,
			opp_status = excluded.opp_status,
			open_date = excluded.open_date,
			close_date = excluded.close_date,
			post_date = excluded.post_date
	`,
		o.ID, NullString(o.OpportunityNumber), o.Title, NullString(o.Description),
		NullString(o.AgencyCode), NullString(o.AgencyName), NullString(o.Mechanism),
		o.Status, NullString(o.OpenDate), NullString(o.CloseDate), NullString(o.PostDate),
		o.CreatedAt,
	)
	return err
}

// ListOpportunities retrieves opportunities with optional filters.
func (db *DB) ListOpportunities(ctx context.Context, opts ListOptions) ([]Opportunity, error) {
	query := `
		SELECT id, opportunity_number, title, description, agency_code, agency_name,
		       mechanism, opp_status, open_date, close_date, post_date, created_at
		FROM opportunities WHERE 1=1
	`
	args := []interface{}{}

	if len(opts.Statuses) > 0 {
		placeholders := strings.Repeat("?,", len(opts.Statuses))
		query += " AND opp_status IN (" + placeholders[:len(placeholders)-1] + ")"
		for _, s := range opts.Statuses {
			args = append(args, s)
		}
	}
	if opts.Agency != nil {
		query += " AND LOWER(agency_name) LIKE LOWER(?)"
		args = append(args, "%"+*opts.Agency+"%")
	}
	if opts.Keyword != nil {
		query += " AND (LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))"
		pattern := "%" + *opts.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	query += " ORDER BY close_date DESC, open_date DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []Opportunity
	for rows.Next() {
		o := Opportunity{}
		var number, description, agencyCode, agencyName, mechanism sql.NullString
		var openDate, closeDate, postDate sql.NullString

		if err := rows.Scan(
			&o.ID, &number, &o.Title, &description, &agencyCode, &agencyName,
			&mechanism, &o.Status, &openDate, &closeDate, &postDate, &o.CreatedAt,
		); err != nil {
			return nil, err
		}

		o.OpportunityNumber = StringPtr(number)
		o.Description = StringPtr(description)
		o.AgencyCode = StringPtr(agencyCode)
		o.AgencyName = StringPtr(agencyName)
		o.Mechanism = StringPtr(mechanism)
		o.OpenDate = StringPtr(openDate)
		o.CloseDate = StringPtr(closeDate)
		o.PostDate = StringPtr(postDate)
		opportunities = append(opportunities, o)
	}

	return opportunities, rows.Err()
}

// CountOpportunities returns the number of opportunities matching the
// filters, ignoring limit and offset.
func (db *DB) CountOpportunities(ctx context.Context, opts ListOptions) (int, error) {
	query := `SELECT COUNT(*) FROM opportunities WHERE 1=1`
	args := []interface{}{}

	if len(opts.Statuses) > 0 {
		placeholders := strings.Repeat("?,", len(opts.Statuses))
		query += " AND opp_status IN (" + placeholders[:len(placeholders)-1] + ")"
		for _, s := range opts.Statuses {
			args = append(args, s)
		}
	}
	if opts.Agency != nil {
		query += " AND LOWER(agency_name) LIKE LOWER(?)"
		args = append(args, "%"+*opts.Agency+"%")
	}
	if opts.Keyword != nil {
		query += " AND (LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))"
		pattern := "%" + *opts.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	var count int
	err := db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// GetStats retrieves row counts across the store.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"people", &stats.People},
		{"projects", &stats.Projects},
		{"publications", &stats.Publications},
		{"grant_history", &stats.GrantRecords},
		{"opportunities", &stats.Opportunities},
	}

	for _, c := range counts {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
