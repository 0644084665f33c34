package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/domain/repository"
	"github.com/collection-points/internal/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	// pgForeignKeyViolation - SQLSTATE нарушения внешнего ключа
	pgForeignKeyViolation = "23503"
	// pgDataExceptionClass - класс SQLSTATE 22: значение не подходит колонке (например, 22001)
	pgDataExceptionClass = "22"
)

// selectPoints выбирает пункты вместе с полным набором категорий.
// Агрегация в одном запросе даёт единый снимок: пункт виден целиком или не виден вовсе.
const selectPoints = `
	SELECT
		p.id, p.name, p.email, p.whatsapp, p.latitude, p.longitude,
		p.city, p.uf, p.image, p.created_at,
		array_agg(pc.category_id ORDER BY pc.category_id) AS category_ids
	FROM points p
	JOIN point_categories pc ON pc.point_id = p.id
`

type pointRow struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	Email       string        `db:"email"`
	Whatsapp    string        `db:"whatsapp"`
	Latitude    float64       `db:"latitude"`
	Longitude   float64       `db:"longitude"`
	City        string        `db:"city"`
	UF          string        `db:"uf"`
	Image       *string       `db:"image"`
	CreatedAt   time.Time     `db:"created_at"`
	CategoryIDs pq.Int64Array `db:"category_ids"`
}

func (r pointRow) toDomain() *domain.Point {
	return &domain.Point{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Whatsapp:    r.Whatsapp,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		City:        r.City,
		UF:          r.UF,
		Image:       r.Image,
		CreatedAt:   r.CreatedAt,
		CategoryIDs: []int64(r.CategoryIDs),
	}
}

type pointRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPointRepository(db *DB) repository.PointRepository {
	return &pointRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create сохраняет пункт и его категории в одной транзакции.
// Любая ошибка откатывает транзакцию целиком, частичных записей не остаётся.
func (r *pointRepository) Create(
	ctx context.Context,
	point *domain.Point,
	categoryIDs []int64,
) (*domain.Point, error) {
	ids := uniqueSorted(categoryIDs)
	if len(ids) == 0 {
		return nil, errors.NewValidationError(map[string]string{"items": "required"})
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrPersistenceFailed.Wrap(err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !stderrors.Is(err, sql.ErrTxDone) {
			r.logger.Warn("Failed to rollback transaction", zap.Error(err))
		}
	}()

	// Ссылочная целостность проверяется здесь, до вставки строк
	var existing []int64
	err = tx.SelectContext(ctx, &existing,
		`SELECT id FROM categories WHERE id = ANY($1) FOR SHARE`,
		pq.Array(ids),
	)
	if err != nil {
		r.logger.Error("Failed to check categories", zap.Error(err))
		return nil, errors.ErrPersistenceFailed.Wrap(err)
	}
	if missing := difference(ids, existing); len(missing) > 0 {
		return nil, errors.NewUnknownCategoryError(missing)
	}

	created := *point
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO points (name, email, whatsapp, latitude, longitude, city, uf, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		point.Name, point.Email, point.Whatsapp,
		point.Latitude, point.Longitude,
		point.City, point.UF, point.Image,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert point", zap.Error(err))
		return nil, r.mapWriteError(err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO point_categories (point_id, category_id)
		SELECT $1, unnest($2::bigint[])
	`, created.ID, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to insert point categories",
			zap.Int64("point_id", created.ID),
			zap.Error(err),
		)
		return nil, r.mapWriteError(err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit point", zap.Int64("point_id", created.ID), zap.Error(err))
		return nil, errors.ErrPersistenceFailed.Wrap(err)
	}

	created.CategoryIDs = ids

	r.logger.Debug("Point created",
		zap.Int64("point_id", created.ID),
		zap.Int64s("category_ids", ids),
	)

	return &created, nil
}

func (r *pointRepository) GetByID(ctx context.Context, id int64) (*domain.Point, error) {
	query := selectPoints + `
		WHERE p.id = $1
		GROUP BY p.id
	`

	var row pointRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPointNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get point by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return row.toDomain(), nil
}

// Query выполняет фильтрацию одним запросом.
// city и uf - точное совпадение, категории - хотя бы одна из запрошенных.
// Порядок: created_at, затем id.
func (r *pointRepository) Query(ctx context.Context, filter domain.PointFilter) ([]*domain.Point, error) {
	query, args := buildPointQuery(filter)

	r.logger.Debug("Querying points",
		zap.Bool("unfiltered", filter.IsEmpty()),
		zap.Int64s("category_ids", filter.CategoryIDs),
	)

	var rows []pointRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to query points",
			zap.String("city", filter.City),
			zap.String("uf", filter.UF),
			zap.Int64s("category_ids", filter.CategoryIDs),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	points := make([]*domain.Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, row.toDomain())
	}

	return points, nil
}

func buildPointQuery(filter domain.PointFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("p.city = $%d", argIdx))
		args = append(args, filter.City)
		argIdx++
	}

	if filter.UF != "" {
		conditions = append(conditions, fmt.Sprintf("p.uf = $%d", argIdx))
		args = append(args, filter.UF)
		argIdx++
	}

	if len(filter.CategoryIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM point_categories f
			WHERE f.point_id = p.id AND f.category_id = ANY($%d)
		)`, argIdx))
		args = append(args, pq.Array(filter.CategoryIDs))
	}

	query := selectPoints
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " GROUP BY p.id ORDER BY p.created_at, p.id"

	return query, args
}

func (r *pointRepository) mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgForeignKeyViolation:
			return errors.ErrUnknownCategory.Wrap(err)
		case strings.HasPrefix(pgErr.Code, pgDataExceptionClass):
			// повтор не поможет, это ошибка входных данных
			return errors.ErrValidationFailed.Wrap(err)
		}
	}
	return errors.ErrPersistenceFailed.Wrap(err)
}

func uniqueSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// difference возвращает элементы want, отсутствующие в have
func difference(want, have []int64) []int64 {
	present := make(map[int64]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}

	var missing []int64
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
