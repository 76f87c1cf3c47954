package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

const templateColumns = `id, title, description, category_id, template_data,
			      preview_url, is_premium, price, downloads_count, created_at, updated_at`

func scanTemplate(row rowScanner) (*models.Template, error) {
	t := &models.Template{}
	var description, previewURL, price sql.NullString
	var templateData []byte
	if err := row.Scan(&t.ID, &t.Title, &description, &t.CategoryID, &templateData,
		&previewURL, &t.IsPremium, &price, &t.DownloadsCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	if previewURL.Valid {
		t.PreviewURL = &previewURL.String
	}
	// numeric(10,2) приходит строкой, наружу цена отдаётся числом
	if price.Valid {
		value, err := strconv.ParseFloat(price.String, 64)
		if err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		t.Price = &value
	}
	if err := json.Unmarshal(templateData, &t.TemplateData); err != nil {
		return nil, fmt.Errorf("unmarshal template_data: %w", err)
	}
	return t, nil
}

// ListCategories возвращает все категории каталога по возрастанию sort_order.
func (s *Storage) ListCategories(ctx context.Context) ([]*models.TemplateCategory, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, slug, description, icon_url, sort_order, created_at
			  FROM template_categories
			  ORDER BY sort_order, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TemplateCategory
	for rows.Next() {
		var item models.TemplateCategory
		var description, iconURL sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &description,
			&iconURL, &item.SortOrder, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if description.Valid {
			item.Description = &description.String
		}
		if iconURL.Valid {
			item.IconURL = &iconURL.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListTemplates возвращает шаблоны указанной категории с пагинацией.
// Для неизвестной категории возвращается пустой список.
func (s *Storage) ListTemplates(ctx context.Context, filter models.TemplateFilter) ([]*models.Template, error) {
	const op = "storage.ListTemplates"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + templateColumns + `
			  FROM templates
			  WHERE category_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, filter.CategoryID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Template
	for rows.Next() {
		item, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadTemplate возвращает шаблон по его ID. Отсутствие записи
// транслируется в ErrNotFound.
func (s *Storage) ReadTemplate(ctx context.Context, id int) (*models.Template, error) {
	const op = "storage.ReadTemplate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// TemplateExists проверяет существование шаблона по его ID.
func (s *Storage) TemplateExists(ctx context.Context, id int) (bool, error) {
	const op = "storage.TemplateExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM templates WHERE id = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
