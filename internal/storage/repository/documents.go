package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

const documentColumns = `id, user_id, template_id, title, document_data,
			      file_url, file_type, status, is_favorite, created_at, updated_at`

func scanDocument(row rowScanner) (*models.UserDocument, error) {
	d := &models.UserDocument{}
	var templateID sql.NullInt64
	var fileURL, fileType sql.NullString
	var documentData []byte
	if err := row.Scan(&d.ID, &d.UserID, &templateID, &d.Title, &documentData,
		&fileURL, &fileType, &d.Status, &d.IsFavorite, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if templateID.Valid {
		id := int(templateID.Int64)
		d.TemplateID = &id
	}
	if fileURL.Valid {
		d.FileURL = &fileURL.String
	}
	if fileType.Valid {
		d.FileType = &fileType.String
	}
	if err := json.Unmarshal(documentData, &d.DocumentData); err != nil {
		return nil, fmt.Errorf("unmarshal document_data: %w", err)
	}
	return d, nil
}

// CreateDocument сохраняет новый документ пользователя и возвращает созданную
// запись. Ссылки на пользователя и шаблон проверяются на уровне сервиса,
// file_url при создании не заполняется.
func (s *Storage) CreateDocument(ctx context.Context, doc models.UserDocument) (*models.UserDocument, error) {
	const op = "storage.CreateDocument"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	documentData, err := json.Marshal(doc.DocumentData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO user_documents (user_id, template_id, title, document_data,
			      file_type, status, is_favorite)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + documentColumns
	row := s.DB.QueryRowContext(ctx, query,
		doc.UserID, doc.TemplateID, doc.Title, documentData,
		doc.FileType, doc.Status, doc.IsFavorite)

	created, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// ListDocuments возвращает документы пользователя с пагинацией. Необязательные
// фильтры по статусу и признаку избранного применяются одновременно.
func (s *Storage) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]*models.UserDocument, error) {
	const op = "storage.ListDocuments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + documentColumns + `
			  FROM user_documents
			  WHERE user_id = $1
			  	AND ($2::document_status IS NULL OR status = $2)
			  	AND ($3::boolean IS NULL OR is_favorite = $3)
			  ORDER BY id
			  LIMIT $4 OFFSET $5`
	rows, err := s.DB.QueryContext(ctx, query,
		filter.UserID, filter.Status, filter.IsFavorite, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.UserDocument
	for rows.Next() {
		item, err := scanDocument(rows)
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

// UpdateDocument применяет частичное обновление документа и возвращает
// обновлённую запись. Обновляются только заданные поля, updated_at — всегда.
// Отсутствие записи транслируется в ErrNotFound.
func (s *Storage) UpdateDocument(ctx context.Context, id int, patch models.DocumentPatch) (*models.UserDocument, error) {
	const op = "storage.UpdateDocument"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sets := []string{"updated_at = now()"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if patch.Title.Set {
		sets = append(sets, "title = "+arg(patch.Title.Value))
	}
	if patch.DocumentData.Set {
		documentData, err := json.Marshal(patch.DocumentData.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sets = append(sets, "document_data = "+arg(documentData))
	}
	if patch.Status.Set {
		sets = append(sets, "status = "+arg(patch.Status.Value))
	}
	if patch.IsFavorite.Set {
		sets = append(sets, "is_favorite = "+arg(patch.IsFavorite.Value))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE user_documents SET %s WHERE id = $%d RETURNING `+documentColumns,
		strings.Join(sets, ", "), len(args))
	row := s.DB.QueryRowContext(ctx, query, args...)

	updated, err := scanDocument(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}
