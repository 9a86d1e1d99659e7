package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/veldrin/ironlog/internal/error_values"
	"github.com/veldrin/ironlog/pkg/cleanup"
	"github.com/veldrin/ironlog/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing workoutsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO workouts (user_id, name, status) VALUES ($1, $2, $3) RETURNING id;`,
		workout.UserID,
		workout.Name,
		entity.StatusDrafted,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating workout db error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workout entity.Workout
	workout.ID = id
	row := wr.conn.QueryRow(ctx, `SELECT user_id, name, status, created_at, completed_at, updated_at FROM workouts WHERE id = $1;`, id)
	if err := row.Scan(&workout.UserID, &workout.Name, &workout.Status, &workout.CreatedAt, &workout.CompletedAt, &workout.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout by id error: " + err.Error())
	}
	return &workout, nil
}

// GetComposition loads the workout's exercises with their sets. Order follows
// exercise_index and set_index.
func (wr *WorkoutsRepository) GetComposition(ctx context.Context, workoutID uuid.UUID) ([]*entity.WorkoutExercise, error) {
	exercises := make([]*entity.WorkoutExercise, 0)
	rows, err := wr.conn.Query(ctx, `SELECT we.id, we.workout_id, we.exercise_id, e.name, c.type, we.exercise_index, we.notes, we.completed_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		JOIN exercise_categories c ON c.id = e.category_id
		WHERE we.workout_id = $1 ORDER BY we.exercise_index;`, workoutID)
	if err != nil {
		return nil, errors.New("getting workout exercises error: " + err.Error())
	}
	defer rows.Close()
	byID := make(map[int64]*entity.WorkoutExercise)
	for rows.Next() {
		we := entity.WorkoutExercise{Sets: make([]entity.WorkoutSet, 0)}
		err = rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseName, &we.Type, &we.ExerciseIndex, &we.Notes, &we.CompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout exercise error: " + err.Error())
		}
		exercises = append(exercises, &we)
		byID[we.ID] = &we
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning workout exercises: " + rows.Err().Error())
	}
	rows.Close()

	setRows, err := wr.conn.Query(ctx, `SELECT ws.id, ws.workout_exercise_id, ws.set_index, ws.mins, ws.distance, ws.kcal, ws.lbs, ws.reps
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		WHERE we.workout_id = $1 ORDER BY ws.workout_exercise_id, ws.set_index;`, workoutID)
	if err != nil {
		return nil, errors.New("getting workout sets error: " + err.Error())
	}
	defer setRows.Close()
	for setRows.Next() {
		var parentID int64
		s := entity.WorkoutSet{}
		err = setRows.Scan(&s.ID, &parentID, &s.SetIndex, &s.Mins, &s.Distance, &s.Kcal, &s.Lbs, &s.Reps)
		if err != nil {
			return nil, errors.New("unmarshalling workout set error: " + err.Error())
		}
		if we, ok := byID[parentID]; ok {
			we.Sets = append(we.Sets, s)
		}
	}
	if setRows.Err() != nil {
		return nil, errors.New("unexpected error after scanning workout sets: " + setRows.Err().Error())
	}
	return exercises, nil
}

// List pages through the user's workouts newest first. The cursor marks the
// last workout of the previous page; a nil cursor starts from the top.
func (wr *WorkoutsRepository) List(ctx context.Context, uid uuid.UUID, cursor *Cursor, limit int) ([]*entity.Workout, *Cursor, error) {
	args := []any{uid, limit}
	query := `SELECT id, user_id, name, status, created_at, completed_at, updated_at FROM workouts WHERE user_id = $1`
	if cursor != nil {
		query += ` AND (created_at, id) < ($3, $4)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $2;`

	rows, err := wr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, errors.New("listing workouts error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]*entity.Workout, 0, limit)
	for rows.Next() {
		w := entity.Workout{}
		err = rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Status, &w.CreatedAt, &w.CompletedAt, &w.UpdatedAt)
		if err != nil {
			return nil, nil, errors.New("unmarshalling workout error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if rows.Err() != nil {
		return nil, nil, errors.New("unexpected error after scanning workouts: " + rows.Err().Error())
	}
	var next *Cursor
	if len(workouts) == limit {
		last := workouts[len(workouts)-1]
		next = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return workouts, next, nil
}

func (wr *WorkoutsRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	ct, err := wr.conn.Exec(ctx, `UPDATE workouts SET name = $1, updated_at = NOW() WHERE id = $2;`, name, id)
	if err != nil {
		return errors.New("error updating workout name: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

// Delete removes the workout and all its rows: sets first, then exercises,
// then the workout itself, inside one transaction.
func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting delete transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM workout_sets WHERE workout_exercise_id IN (SELECT id FROM workout_exercises WHERE workout_id = $1);`, id)
	if err != nil {
		return errors.New("deleting workout sets error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1;`, id)
	if err != nil {
		return errors.New("deleting workout exercises error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting workout error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing workout deletion error: " + err.Error())
	}
	return nil
}

// Replace swaps the workout's whole composition for the desired list in one
// transaction: old sets and exercises go away, the new list is inserted with
// positional indices. Inserts are scoped to exercises owned by uid, so a
// foreign exercise id aborts with ErrExerciseNotFound. With finalize the
// workout becomes DONE and every new exercise row gets completed_at = now.
// A DONE workout is never touched.
func (wr *WorkoutsRepository) Replace(ctx context.Context, workoutID, uid uuid.UUID, desired []entity.ExerciseDraft, finalize bool, now time.Time) error {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting replace transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var status entity.WorkoutStatus
	row := tx.QueryRow(ctx, `SELECT status FROM workouts WHERE id = $1 FOR UPDATE;`, workoutID)
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrWorkoutNotFound
		}
		return errors.New("locking workout error: " + err.Error())
	}
	if status == entity.StatusDone {
		return errorvalues.ErrWorkoutCompleted
	}

	_, err = tx.Exec(ctx, `DELETE FROM workout_sets WHERE workout_exercise_id IN (SELECT id FROM workout_exercises WHERE workout_id = $1);`, workoutID)
	if err != nil {
		return errors.New("deleting old sets error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_id = $1;`, workoutID)
	if err != nil {
		return errors.New("deleting old exercises error: " + err.Error())
	}

	for i, ex := range desired {
		var completedAt *time.Time
		if finalize {
			completedAt = &now
		}
		var weID int64
		row = tx.QueryRow(ctx, `INSERT INTO workout_exercises (workout_id, exercise_id, exercise_index, notes, completed_at)
			SELECT $1, id, $3, $4, $5 FROM exercises WHERE id = $2 AND user_id = $6 RETURNING id;`,
			workoutID, ex.ExerciseID, i, ex.Notes, completedAt, uid,
		)
		if err = row.Scan(&weID); err != nil {
			// zero rows means the exercise doesn't exist or has another owner
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrExerciseNotFound
			}
			return errors.New("inserting workout exercise error: " + err.Error())
		}
		for j, set := range ex.Sets {
			_, err = tx.Exec(ctx, `INSERT INTO workout_sets (workout_exercise_id, set_index, mins, distance, kcal, lbs, reps) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				weID, j, set.Mins, set.Distance, set.Kcal, set.Lbs, set.Reps,
			)
			if err != nil {
				return errors.New("inserting workout set error: " + err.Error())
			}
		}
	}

	if finalize {
		_, err = tx.Exec(ctx, `UPDATE workouts SET status = $1, completed_at = $2, updated_at = $2 WHERE id = $3;`,
			entity.StatusDone, now, workoutID,
		)
	} else {
		_, err = tx.Exec(ctx, `UPDATE workouts SET updated_at = $1 WHERE id = $2;`, now, workoutID)
	}
	if err != nil {
		return errors.New("updating workout on replace error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing replace error: " + err.Error())
	}
	return nil
}

// SeedExercises appends exercises with no sets, preserving input order. Used
// for instantiating a template and for repeating a past workout. Only
// exercises owned by uid are accepted.
func (wr *WorkoutsRepository) SeedExercises(ctx context.Context, workoutID, uid uuid.UUID, exerciseIDs []uuid.UUID) error {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting seed transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	for i, exerciseID := range exerciseIDs {
		ct, err := tx.Exec(ctx, `INSERT INTO workout_exercises (workout_id, exercise_id, exercise_index, notes)
			SELECT $1, id, $3, '' FROM exercises WHERE id = $2 AND user_id = $4;`,
			workoutID, exerciseID, i, uid,
		)
		if err != nil {
			return errors.New("seeding workout exercise error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrExerciseNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing seed error: " + err.Error())
	}
	return nil
}

// LastSession finds the most recent completed occurrence of the exercise
// across the owner's workouts. Returns nil without error when there is none.
func (wr *WorkoutsRepository) LastSession(ctx context.Context, exerciseID, uid uuid.UUID) (*entity.ExerciseSession, error) {
	var weID int64
	session := entity.ExerciseSession{}
	row := wr.conn.QueryRow(ctx, `SELECT we.id, w.id, w.name, we.notes, we.completed_at
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = $1 AND w.user_id = $2 AND we.completed_at IS NOT NULL
		ORDER BY we.completed_at DESC LIMIT 1;`, exerciseID, uid)
	if err := row.Scan(&weID, &session.WorkoutID, &session.WorkoutName, &session.Notes, &session.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last session error: " + err.Error())
	}
	sets, err := wr.sessionSets(ctx, weID)
	if err != nil {
		return nil, err
	}
	session.Sets = sets
	return &session, nil
}

// History lists completed occurrences of the exercise, most recent first.
func (wr *WorkoutsRepository) History(ctx context.Context, exerciseID, uid uuid.UUID, limit int) ([]*entity.ExerciseSession, error) {
	rows, err := wr.conn.Query(ctx, `SELECT we.id, w.id, w.name, we.notes, we.completed_at
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = $1 AND w.user_id = $2 AND we.completed_at IS NOT NULL
		ORDER BY we.completed_at DESC LIMIT $3;`, exerciseID, uid, limit)
	if err != nil {
		return nil, errors.New("getting exercise history error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.ExerciseSession, 0, limit)
	parentIDs := make([]int64, 0, limit)
	for rows.Next() {
		var weID int64
		s := entity.ExerciseSession{}
		err = rows.Scan(&weID, &s.WorkoutID, &s.WorkoutName, &s.Notes, &s.CompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling session error: " + err.Error())
		}
		sessions = append(sessions, &s)
		parentIDs = append(parentIDs, weID)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning sessions: " + rows.Err().Error())
	}
	rows.Close()
	for i, weID := range parentIDs {
		sets, err := wr.sessionSets(ctx, weID)
		if err != nil {
			return nil, err
		}
		sessions[i].Sets = sets
	}
	return sessions, nil
}

func (wr *WorkoutsRepository) sessionSets(ctx context.Context, workoutExerciseID int64) ([]entity.WorkoutSet, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, set_index, mins, distance, kcal, lbs, reps FROM workout_sets WHERE workout_exercise_id = $1 ORDER BY set_index;`, workoutExerciseID)
	if err != nil {
		return nil, errors.New("getting session sets error: " + err.Error())
	}
	defer rows.Close()
	sets := make([]entity.WorkoutSet, 0)
	for rows.Next() {
		s := entity.WorkoutSet{}
		err = rows.Scan(&s.ID, &s.SetIndex, &s.Mins, &s.Distance, &s.Kcal, &s.Lbs, &s.Reps)
		if err != nil {
			return nil, errors.New("unmarshalling set error: " + err.Error())
		}
		sets = append(sets, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning sets: " + rows.Err().Error())
	}
	return sets, nil
}
