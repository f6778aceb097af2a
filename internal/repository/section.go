package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SectionRepository владеет строковой схемой секций. is_active хранится
// как SMALLINT 0/1 и переводится в bool при чтении и записи — остальной
// код примитивной кодировки не видит.
type SectionRepository struct {
	db *pgxpool.Pool
}

func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{db: db}
}

const sectionColumns = `id, page_key, kind, display_name, authoring_prompt, content,
	layout_variant, order_index, is_active, version, generated_at, updated_at`

func (r *SectionRepository) Create(ctx context.Context, s *models.Section) (*models.Section, error) {
	s.ID = uuid.NewString()
	s.Version = 1
	now := time.Now().UTC()
	s.GeneratedAt = now
	s.UpdatedAt = now

	query := `INSERT INTO sections (` + sectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.PageKey, s.Kind, s.DisplayName, s.AuthoringPrompt, s.Content,
		s.LayoutVariant, s.OrderIndex, boolToInt(s.IsActive), s.Version,
		s.GeneratedAt, s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID возвращает (nil, nil), когда секции нет.
func (r *SectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`
	s, err := scanSection(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByPage возвращает только активные секции страницы по возрастанию
// order_index. Порядок секций с одинаковым индексом не оговаривается.
func (r *SectionRepository) ListByPage(ctx context.Context, pageKey string) ([]*models.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections
		WHERE page_key = $1 AND is_active = 1
		ORDER BY order_index ASC`
	rows, err := r.db.Query(ctx, query, pageKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Update применяет частичное обновление: каждое заполненное поле патча
// попадает в SET, version и updated_at обновляются всегда. Обновление
// несуществующего id — no-op, как и в остальных местах системы.
func (r *SectionRepository) Update(ctx context.Context, id string, p *models.SectionPatch) error {
	if p == nil || p.IsEmpty() {
		return nil
	}

	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}

	if p.PageKey != nil {
		add("page_key", *p.PageKey)
	}
	if p.Kind != nil {
		add("kind", *p.Kind)
	}
	if p.DisplayName != nil {
		add("display_name", *p.DisplayName)
	}
	if p.AuthoringPrompt != nil {
		add("authoring_prompt", *p.AuthoringPrompt)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.LayoutVariant != nil {
		add("layout_variant", *p.LayoutVariant)
	}
	if p.OrderIndex != nil {
		add("order_index", *p.OrderIndex)
	}
	if p.IsActive != nil {
		add("is_active", boolToInt(*p.IsActive))
	}

	set = append(set, fmt.Sprintf("version = version + 1, updated_at = $%d", i))
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE sections SET %s WHERE id = $%d", strings.Join(set, ", "), i+1)
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// Delete несуществующего id — тоже no-op.
func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (*models.Section, error) {
	var s models.Section
	var active int16
	err := row.Scan(
		&s.ID, &s.PageKey, &s.Kind, &s.DisplayName, &s.AuthoringPrompt, &s.Content,
		&s.LayoutVariant, &s.OrderIndex, &active, &s.Version,
		&s.GeneratedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.IsActive = active == 1
	return &s, nil
}

func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}
