package store

import "github.com/avetrin/go-folio/models"

// RecordMapper describes how one resource type maps onto its table: the
// column list, the row scan, and the column/value maps for INSERT and
// UPDATE. The generic repository is parameterised with exactly one mapper
// per resource, keeping all SQL construction in a single place.
type RecordMapper[T models.Owned] struct {
	// Table is the table name the mapper reads and writes.
	Table string

	// Columns is the full column list, in the order Scan expects.
	Columns []string

	// Scan reads one row in Columns order into a fresh record.
	Scan func(row RowScanner) (T, error)

	// InsertMap yields the column/value pairs of an INSERT. It includes
	// the owner column but never id or timestamps, which the database
	// assigns.
	InsertMap func(record T) map[string]any

	// UpdateMap yields the column/value pairs of an UPDATE. It carries
	// only the resource content fields; id and owner are immutable.
	UpdateMap func(record T) map[string]any
}

var recordColumns = []string{"id", "user_id", "created_at", "updated_at"}

func withRecordColumns(resource ...string) []string {
	columns := make([]string, 0, len(recordColumns)+len(resource))
	columns = append(columns, recordColumns[:2]...)
	columns = append(columns, resource...)
	columns = append(columns, recordColumns[2:]...)
	return columns
}

// SkillMapper maps [models.Skill] onto the skills table.
func SkillMapper() RecordMapper[*models.Skill] {
	return RecordMapper[*models.Skill]{
		Table:   models.Skill{}.TableName(),
		Columns: withRecordColumns("title", "level"),
		Scan: func(row RowScanner) (*models.Skill, error) {
			s := &models.Skill{}
			err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Level, &s.CreatedAt, &s.UpdatedAt)
			return s, err
		},
		InsertMap: func(s *models.Skill) map[string]any {
			return map[string]any{
				"user_id": s.UserID,
				"title":   s.Title,
				"level":   s.Level,
			}
		},
		UpdateMap: func(s *models.Skill) map[string]any {
			return map[string]any{
				"title": s.Title,
				"level": s.Level,
			}
		},
	}
}

// ExperienceMapper maps [models.Experience] onto the experiences table.
func ExperienceMapper() RecordMapper[*models.Experience] {
	return RecordMapper[*models.Experience]{
		Table:   models.Experience{}.TableName(),
		Columns: withRecordColumns("icon_type", "date", "title", "company", "description"),
		Scan: func(row RowScanner) (*models.Experience, error) {
			e := &models.Experience{}
			err := row.Scan(&e.ID, &e.UserID, &e.IconType, &e.Date, &e.Title, &e.Company, &e.Description, &e.CreatedAt, &e.UpdatedAt)
			return e, err
		},
		InsertMap: func(e *models.Experience) map[string]any {
			return map[string]any{
				"user_id":     e.UserID,
				"icon_type":   e.IconType,
				"date":        e.Date,
				"title":       e.Title,
				"company":     e.Company,
				"description": e.Description,
			}
		},
		UpdateMap: func(e *models.Experience) map[string]any {
			return map[string]any{
				"icon_type":   e.IconType,
				"date":        e.Date,
				"title":       e.Title,
				"company":     e.Company,
				"description": e.Description,
			}
		},
	}
}

// ProjectMapper maps [models.Project] onto the projects table.
func ProjectMapper() RecordMapper[*models.Project] {
	return RecordMapper[*models.Project]{
		Table:   models.Project{}.TableName(),
		Columns: withRecordColumns("title", "description", "link", "image_url", "image_key"),
		Scan: func(row RowScanner) (*models.Project, error) {
			p := &models.Project{}
			err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Link, &p.ImageURL, &p.ImageKey, &p.CreatedAt, &p.UpdatedAt)
			return p, err
		},
		InsertMap: func(p *models.Project) map[string]any {
			return map[string]any{
				"user_id":     p.UserID,
				"title":       p.Title,
				"description": p.Description,
				"link":        p.Link,
				"image_url":   p.ImageURL,
				"image_key":   p.ImageKey,
			}
		},
		UpdateMap: func(p *models.Project) map[string]any {
			return map[string]any{
				"title":       p.Title,
				"description": p.Description,
				"link":        p.Link,
				"image_url":   p.ImageURL,
				"image_key":   p.ImageKey,
			}
		},
	}
}

// CertificateMapper maps [models.Certificate] onto the certificates table.
func CertificateMapper() RecordMapper[*models.Certificate] {
	return RecordMapper[*models.Certificate]{
		Table:   models.Certificate{}.TableName(),
		Columns: withRecordColumns("title", "issuer", "date", "file_key", "filename", "content_type"),
		Scan: func(row RowScanner) (*models.Certificate, error) {
			c := &models.Certificate{}
			err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Issuer, &c.Date, &c.FileKey, &c.Filename, &c.ContentType, &c.CreatedAt, &c.UpdatedAt)
			return c, err
		},
		InsertMap: func(c *models.Certificate) map[string]any {
			return map[string]any{
				"user_id":      c.UserID,
				"title":        c.Title,
				"issuer":       c.Issuer,
				"date":         c.Date,
				"file_key":     c.FileKey,
				"filename":     c.Filename,
				"content_type": c.ContentType,
			}
		},
		UpdateMap: func(c *models.Certificate) map[string]any {
			return map[string]any{
				"title":  c.Title,
				"issuer": c.Issuer,
				"date":   c.Date,
			}
		},
	}
}

// AboutMapper maps [models.About] onto the abouts table. The unique index
// on user_id surfaces as [ErrDuplicateRecord] on a second insert for the
// same owner; the service layer turns writes into upserts.
func AboutMapper() RecordMapper[*models.About] {
	return RecordMapper[*models.About]{
		Table:   models.About{}.TableName(),
		Columns: withRecordColumns("data"),
		Scan: func(row RowScanner) (*models.About, error) {
			a := &models.About{}
			err := row.Scan(&a.ID, &a.UserID, &a.Data, &a.CreatedAt, &a.UpdatedAt)
			return a, err
		},
		InsertMap: func(a *models.About) map[string]any {
			return map[string]any{
				"user_id": a.UserID,
				"data":    []byte(a.Data),
			}
		},
		UpdateMap: func(a *models.About) map[string]any {
			return map[string]any{
				"data": []byte(a.Data),
			}
		},
	}
}

// ContactMessageMapper maps [models.ContactMessage] onto the
// contact_messages table.
func ContactMessageMapper() RecordMapper[*models.ContactMessage] {
	return RecordMapper[*models.ContactMessage]{
		Table:   models.ContactMessage{}.TableName(),
		Columns: withRecordColumns("name", "email", "message"),
		Scan: func(row RowScanner) (*models.ContactMessage, error) {
			m := &models.ContactMessage{}
			err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Email, &m.Message, &m.CreatedAt, &m.UpdatedAt)
			return m, err
		},
		InsertMap: func(m *models.ContactMessage) map[string]any {
			return map[string]any{
				"user_id": m.UserID,
				"name":    m.Name,
				"email":   m.Email,
				"message": m.Message,
			}
		},
		UpdateMap: func(m *models.ContactMessage) map[string]any {
			return map[string]any{
				"name":    m.Name,
				"email":   m.Email,
				"message": m.Message,
			}
		},
	}
}
