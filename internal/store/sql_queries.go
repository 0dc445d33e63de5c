package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/Masterminds/squirrel"
)

const (
	namesTable = "names"

	columnID        = "id"
	columnText      = "texto"
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
)

var nameColumns = []string{columnID, columnText, columnCreatedAt, columnUpdatedAt}

func buildListNamesQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := sb.
		Select(nameColumns...).
		From(namesTable).
		OrderBy(columnCreatedAt, columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetNameQuery(sb squirrel.StatementBuilderType, id models.EntryID) (string, []any, error) {
	query, args, err := sb.
		Select(nameColumns...).
		From(namesTable).
		Where(squirrel.Eq{columnID: id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertNameQuery(sb squirrel.StatementBuilderType, entry models.NameEntry) (string, []any, error) {
	query, args, err := sb.
		Insert(namesTable).
		Columns(nameColumns...).
		Values(entry.ID.String(), entry.Text, timeOrNow(entry.CreatedAt), timeOrNow(entry.UpdatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateNameQuery(sb squirrel.StatementBuilderType, entry models.NameEntry) (string, []any, error) {
	query, args, err := sb.
		Update(namesTable).
		Set(columnText, entry.Text).
		Set(columnUpdatedAt, timeOrNow(entry.UpdatedAt)).
		Where(squirrel.Eq{columnID: entry.ID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNameQuery(sb squirrel.StatementBuilderType, id models.EntryID) (string, []any, error) {
	query, args, err := sb.
		Delete(namesTable).
		Where(squirrel.Eq{columnID: id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
