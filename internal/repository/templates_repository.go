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

type TemplatesRepository struct {
	conn PgConnection
}

func NewTemplatesRepo(cfg DBConfig) *TemplatesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for templatesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing templatesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TemplatesRepository{
		conn: pool,
	}
}

func NewTemplatesRepoWithConn(conn PgConnection) *TemplatesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for templatesRepo: " + err.Error())
	}
	return &TemplatesRepository{
		conn: conn,
	}
}

// Create inserts the template and its exercise list in one transaction. The
// exercise inserts are scoped to the template owner's exercises, so a foreign
// exercise id aborts with ErrExerciseNotFound.
func (tr *TemplatesRepository) Create(ctx context.Context, template *entity.WorkoutTemplate) (uuid.UUID, error) {
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("starting template transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO workout_templates (user_id, name) VALUES ($1, $2) RETURNING id;`,
		template.UserID,
		template.Name,
	)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating template db error: " + err.Error())
	}
	for i, ex := range template.Exercises {
		ct, err := tx.Exec(ctx, `INSERT INTO workout_template_exercises (template_id, exercise_id, exercise_index)
			SELECT $1, id, $3 FROM exercises WHERE id = $2 AND user_id = $4;`,
			id, ex.ExerciseID, i, template.UserID,
		)
		if err != nil {
			return uuid.UUID{}, errors.New("creating template exercise db error: " + err.Error())
		}
		// zero rows means the exercise doesn't exist or has another owner
		if ct.RowsAffected() == 0 {
			return uuid.UUID{}, errorvalues.ErrExerciseNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing template error: " + err.Error())
	}
	return id, nil
}

func (tr *TemplatesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutTemplate, error) {
	var template entity.WorkoutTemplate
	template.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, name, created_at FROM workout_templates WHERE id = $1;`, id)
	if err := row.Scan(&template.UserID, &template.Name, &template.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("getting template by id error: " + err.Error())
	}
	exercises, err := tr.templateExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	template.Exercises = exercises
	return &template, nil
}

func (tr *TemplatesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutTemplate, error) {
	templates := make([]*entity.WorkoutTemplate, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, name, created_at FROM workout_templates WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting templates by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.WorkoutTemplate{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling template error: " + err.Error())
		}
		templates = append(templates, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning templates: " + rows.Err().Error())
	}
	rows.Close()
	for _, t := range templates {
		exercises, err := tr.templateExercises(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Exercises = exercises
	}
	return templates, nil
}

func (tr *TemplatesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting template deletion error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM workout_template_exercises WHERE template_id = $1;`, id)
	if err != nil {
		return errors.New("deleting template exercises error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM workout_templates WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting template error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing template deletion error: " + err.Error())
	}
	return nil
}

func (tr *TemplatesRepository) templateExercises(ctx context.Context, templateID uuid.UUID) ([]entity.TemplateExercise, error) {
	exercises := make([]entity.TemplateExercise, 0)
	rows, err := tr.conn.Query(ctx, `SELECT te.exercise_id, e.name, te.exercise_index
		FROM workout_template_exercises te
		JOIN exercises e ON e.id = te.exercise_id
		WHERE te.template_id = $1 ORDER BY te.exercise_index;`, templateID)
	if err != nil {
		return nil, errors.New("getting template exercises error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		te := entity.TemplateExercise{}
		err = rows.Scan(&te.ExerciseID, &te.ExerciseName, &te.ExerciseIndex)
		if err != nil {
			return nil, errors.New("unmarshalling template exercise error: " + err.Error())
		}
		exercises = append(exercises, te)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning template exercises: " + rows.Err().Error())
	}
	return exercises, nil
}
