package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

const (
	argLimit  = "limit"
	argOffset = "offset"
)

// column is one selectable field. Columns of joined tables carry their table and the alias they scan into.
type column struct {
	name  string
	table string
	alias string
}

func (c column) selector() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is the table gateway every domain repository embeds. T is the row model: its `db` tags name the
// columns, `table`/`column` tags pull fields from joined tables and an optional GetJoinQuery method supplies the join.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	insertQuery   string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	placeholders := make([]string, 0, len(insertColumns))
	for _, col := range insertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQuery(zero),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
	}
}

func joinQuery(model any) string {
	method := reflect.ValueOf(model).MethodByName("GetJoinQuery")
	if !method.IsValid() {
		return ""
	}

	out := method.Call(nil)
	if len(out) == 0 {
		return ""
	}

	return out[0].String()
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

// fail records err on the span and wraps it with the entity being worked on.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, exec execer, action, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	return repo.exec(ctx, scope, repo.db.Write, "insert data", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	return repo.exec(ctx, scope, sqltx, "insert data", repo.insertQuery, model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, prep preparer, filter dto.FilterGroup, lock bool, columns ...string) (T, error) {
	var model T

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectClause(columns...), repo.table, repo.join, where)
	if lock {
		query += " FOR UPDATE OF " + repo.table
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// Get returns the first row matching filter, or the zero value when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	return repo.get(ctx, scope, repo.db.Read, filter, false, columns...)
}

// GetForUpdateTx reads the matching row inside sqltx and locks it until the transaction ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.scope(ctx, "GetForUpdateTx")
	defer scope.End()

	return repo.get(ctx, scope, sqltx, filter, true)
}

// GetTx reads the matching row inside sqltx without locking it.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.scope(ctx, "GetTx")
	defer scope.End()

	return repo.get(ctx, scope, sqltx, filter, false)
}

func (repo *Repository[T]) getAll(ctx context.Context, scope otel.Scope, prep preparer, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	var models []T

	where, args := repo.BuildWhereClause(ctx, filter)

	query := strings.Join(slices.DeleteFunc([]string{
		fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectClause(columns...), repo.table, repo.join, where),
		ordering(params),
		pagination(params, args),
	}, func(part string) bool { return part == "" }), " ")

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	return repo.getAll(ctx, scope, repo.db.Read, params, filter, columns...)
}

// GetAllTx reads every matching row inside sqltx, unpaged and unsorted.
func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAllTx")
	defer scope.End()

	return repo.getAll(ctx, scope, sqltx, dto.QueryParams{}, filter)
}

func (repo *Repository[T]) count(ctx context.Context, scope otel.Scope, prep preparer, filter dto.FilterGroup) (int, error) {
	var count int

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	return repo.count(ctx, scope, repo.db.Read, filter)
}

func (repo *Repository[T]) CountTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "CountTx")
	defer scope.End()

	return repo.count(ctx, scope, sqltx, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, scope otel.Scope, exec execer, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, exec, "delete data", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	return repo.delete(ctx, scope, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "DeleteTx")
	defer scope.End()

	return repo.delete(ctx, scope, sqltx, filter)
}

// update sets the columns in mod on every matching row. Columns are written in name order so equal
// updates produce equal statements.
func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := []string{}
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, scope, exec, "update data", query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	return repo.update(ctx, scope, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "UpdateTx")
	defer scope.End()

	return repo.update(ctx, scope, sqltx, mod, filter)
}

// selectClause lists the model's columns, narrowed to only when given.
func (repo *Repository[T]) selectClause(only ...string) string {
	selectors := []string{}

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selectors = append(selectors, col.selector())
	}

	return strings.Join(selectors, ", ")
}

func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
}

// pagination adds the limit and offset arguments to args and returns the matching clause.
func pagination(params dto.QueryParams, args map[string]any) string {
	switch {
	case params.Page > 0 && params.Limit > 0:
		args[argLimit] = params.Limit
		args[argOffset] = (params.Page - 1) * params.Limit

		return "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args[argLimit] = params.Limit

		return "LIMIT :limit"
	default:
		return ""
	}
}

// getColumns walks the model's fields, descending into embedded structs. Only fields of the model's own
// table are inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
