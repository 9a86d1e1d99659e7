package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/pkg/cleanup"
	"github.com/veldrin/ironlog/pkg/entity"
)

// CatalogRepository holds exercise categories and the exercises inside them.
type CatalogRepository struct {
	conn PgConnection
}

func NewCatalogRepo(cfg DBConfig) *CatalogRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for catalogRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for catalogRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing catalogRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CatalogRepository{
		conn: pool,
	}
}

func NewCatalogRepoWithConn(conn PgConnection) *CatalogRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for catalogRepo: " + err.Error())
	}
	return &CatalogRepository{
		conn: conn,
	}
}

func (cr *CatalogRepository) CreateCategory(ctx context.Context, category *entity.ExerciseCategory) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO exercise_categories (user_id, name, type) VALUES ($1, $2, $3) RETURNING id;`,
		category.UserID,
		category.Name,
		category.Type,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrCategoryExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating category db error: " + err.Error())
	}
	return id, nil
}

func (cr *CatalogRepository) GetCategoriesByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.ExerciseCategory, error) {
	categories := make([]*entity.ExerciseCategory, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, name, type FROM exercise_categories WHERE user_id = $1 ORDER BY name;`, uid)
	if err != nil {
		return nil, errors.New("getting categories by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.ExerciseCategory{}
		err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type)
		if err != nil {
			return nil, errors.New("unmarshalling category error: " + err.Error())
		}
		categories = append(categories, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning categories: " + rows.Err().Error())
	}
	return categories, nil
}

func (cr *CatalogRepository) CreateExercise(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO exercises (user_id, category_id, name) VALUES ($1, $2, $3) RETURNING id;`,
		exercise.UserID,
		exercise.CategoryID,
		exercise.Name,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrCategoryNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (cr *CatalogRepository) GetExerciseByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var exercise entity.Exercise
	exercise.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT e.user_id, e.category_id, e.name, c.type, e.created_at, e.updated_at
		FROM exercises e JOIN exercise_categories c ON c.id = e.category_id WHERE e.id = $1;`, id)
	if err := row.Scan(&exercise.UserID, &exercise.CategoryID, &exercise.Name, &exercise.Type, &exercise.CreatedAt, &exercise.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &exercise, nil
}

func (cr *CatalogRepository) GetExercisesByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Exercise, error) {
	exercises := make([]*entity.Exercise, 0)
	rows, err := cr.conn.Query(ctx, `SELECT e.id, e.user_id, e.category_id, e.name, c.type, e.created_at, e.updated_at
		FROM exercises e JOIN exercise_categories c ON c.id = e.category_id WHERE e.user_id = $1 ORDER BY e.name;`, uid)
	if err != nil {
		return nil, errors.New("getting exercises by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Name, &e.Type, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning exercises: " + rows.Err().Error())
	}
	return exercises, nil
}

func (cr *CatalogRepository) UpdateExerciseName(ctx context.Context, id uuid.UUID, name string) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE exercises SET name = $1, updated_at = NOW() WHERE id = $2;`, name, id)
	if err != nil {
		return errors.New("error updating exercise name: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}
