package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"moviereviews/internal/model"
)

// movieRepository implements MovieRepository using sqlx. The cast list
// lives in a movie_actors child table ordered by position; every read
// reattaches it so callers always see complete movies.
type movieRepository struct {
	db *sqlx.DB
}

func NewMovieRepository(db *sqlx.DB) MovieRepository {
	return &movieRepository{db: db}
}

const movieColumns = `id, title, release_date, image_url, genre, created_at, updated_at`

// ListAll returns every movie in insertion order. That order is the
// tie-break order for the aggregated listing, so it must be deterministic.
func (r *movieRepository) ListAll(ctx context.Context) ([]model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies ORDER BY id`, movieColumns)

	var movies []model.Movie
	err := r.db.SelectContext(ctx, &movies, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	if err := r.attachActorsMany(ctx, movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE title = $1`, movieColumns)

	var m model.Movie
	err := r.db.GetContext(ctx, &m, query, title)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by title: %w", err)
	}

	if err := r.attachActors(ctx, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)

	var m model.Movie
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}

	if err := r.attachActors(ctx, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Create inserts the movie row and its cast list in one transaction.
func (r *movieRepository) Create(ctx context.Context, m *model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO movies (title, release_date, image_url, genre, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	row := tx.QueryRowxContext(ctx, query, m.Title, m.ReleaseDate, m.ImageURL, m.Genre)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	if err := insertActors(ctx, tx, m.ID, m.Actors); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	for i := range m.Actors {
		m.Actors[i].MovieID = m.ID
		m.Actors[i].Position = i
	}

	return nil
}

// Replace rewrites all stored fields of the movie identified by title.
// The old cast list is dropped and the new one inserted in its place.
func (r *movieRepository) Replace(ctx context.Context, title string, m *model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE movies
		SET title = $1, release_date = $2, image_url = $3, genre = $4, updated_at = NOW()
		WHERE title = $5
		RETURNING id, created_at, updated_at
	`
	row := tx.QueryRowxContext(ctx, query, m.Title, m.ReleaseDate, m.ImageURL, m.Genre, title)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return model.ErrMovieNotFound
		}
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, m.ID); err != nil {
		return fmt.Errorf("failed to clear cast list: %w", err)
	}

	if err := insertActors(ctx, tx, m.ID, m.Actors); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	for i := range m.Actors {
		m.Actors[i].MovieID = m.ID
		m.Actors[i].Position = i
	}

	return nil
}

// Delete removes the movie and (via ON DELETE CASCADE) its cast list.
func (r *movieRepository) Delete(ctx context.Context, title string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE title = $1`, title)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return model.ErrMovieNotFound
	}

	return nil
}

func insertActors(ctx context.Context, tx *sqlx.Tx, movieID int64, actors []model.Actor) error {
	query := `
		INSERT INTO movie_actors (movie_id, actor_name, character_name, position)
		VALUES ($1, $2, $3, $4)
	`
	for i, a := range actors {
		if _, err := tx.ExecContext(ctx, query, movieID, a.ActorName, a.CharacterName, i); err != nil {
			return fmt.Errorf("failed to insert actor: %w", err)
		}
	}
	return nil
}

func (r *movieRepository) attachActors(ctx context.Context, m *model.Movie) error {
	query := `
		SELECT id, movie_id, actor_name, character_name, position
		FROM movie_actors
		WHERE movie_id = $1
		ORDER BY position
	`
	var actors []model.Actor
	if err := r.db.SelectContext(ctx, &actors, query, m.ID); err != nil {
		return fmt.Errorf("failed to list actors: %w", err)
	}
	m.Actors = actors
	return nil
}

// attachActorsMany loads cast lists for all movies in one query to avoid
// an N+1 roundtrip on the listing endpoints.
func (r *movieRepository) attachActorsMany(ctx context.Context, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}

	query := `
		SELECT id, movie_id, actor_name, character_name, position
		FROM movie_actors
		WHERE movie_id = ANY($1)
		ORDER BY movie_id, position
	`
	var actors []model.Actor
	if err := r.db.SelectContext(ctx, &actors, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to list actors: %w", err)
	}

	byMovie := make(map[int64][]model.Actor, len(movies))
	for _, a := range actors {
		byMovie[a.MovieID] = append(byMovie[a.MovieID], a)
	}
	for i := range movies {
		movies[i].Actors = byMovie[movies[i].ID]
	}

	return nil
}
