package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
)

const (
	settingSchemaVersion = "schema_version"
	settingDailyGoal     = "daily_goal"
)

// SQLiteStateRepo stores the state in normalized tables. Save replaces every
// row in one transaction.
type SQLiteStateRepo struct {
	db   *sql.DB
	uow  db.UnitOfWork
	path string
}

func NewSQLiteStateRepo(database *sql.DB, uow db.UnitOfWork, path string) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: database, uow: uow, path: path}
}

func (r *SQLiteStateRepo) Location() string { return r.path }

func (r *SQLiteStateRepo) Load(ctx context.Context) (domain.AppState, error) {
	settings, err := r.loadSettings(ctx)
	if err != nil {
		return domain.AppState{}, err
	}
	rawVersion, ok := settings[settingSchemaVersion]
	if !ok {
		// Nothing saved yet.
		return domain.NewAppState(), nil
	}

	state := domain.AppState{}
	if state.Version, err = strconv.Atoi(rawVersion); err != nil {
		return domain.AppState{}, fmt.Errorf("schema version %q: %w", rawVersion, domain.ErrCorruptData)
	}
	if err := state.CheckVersion(); err != nil {
		return domain.AppState{}, err
	}
	if raw, ok := settings[settingDailyGoal]; ok {
		if state.DailyGoal, err = strconv.Atoi(raw); err != nil {
			return domain.AppState{}, fmt.Errorf("daily goal %q: %w", raw, domain.ErrCorruptData)
		}
	}

	if state.Workouts, err = r.loadWorkouts(ctx); err != nil {
		return domain.AppState{}, err
	}
	if state.Meals, err = r.loadMeals(ctx); err != nil {
		return domain.AppState{}, err
	}
	if state.CustomFoods, err = r.loadCustomFoods(ctx); err != nil {
		return domain.AppState{}, err
	}
	if state.Templates, err = r.loadTemplates(ctx); err != nil {
		return domain.AppState{}, err
	}
	return state.Normalize(), nil
}

func (r *SQLiteStateRepo) Save(ctx context.Context, state domain.AppState) error {
	state = state.Normalize()
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Children first so foreign keys never dangle mid-transaction.
		for _, table := range []string{"template_exercises", "templates", "workout_sets", "workouts", "meals", "custom_foods", "settings"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		settings := [][2]string{
			{settingSchemaVersion, strconv.Itoa(state.Version)},
			{settingDailyGoal, strconv.Itoa(state.DailyGoal)},
		}
		for _, kv := range settings {
			if _, err := tx.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
				return fmt.Errorf("saving setting %s: %w", kv[0], err)
			}
		}

		for i, w := range state.Workouts {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO workouts (id, seq, logged_at, exercise, body_parts, notes) VALUES (?, ?, ?, ?, ?, ?)`,
				w.ID, i, formatTime(w.Date), w.Exercise, joinBodyParts(w.BodyParts), w.Notes,
			); err != nil {
				return fmt.Errorf("inserting workout %s: %w", w.ID, err)
			}
			for pos, s := range w.Sets {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO workout_sets (workout_id, position, reps, weight) VALUES (?, ?, ?, ?)`,
					w.ID, pos, s.Reps, s.Weight,
				); err != nil {
					return fmt.Errorf("inserting set %d of workout %s: %w", pos+1, w.ID, err)
				}
			}
		}

		for i, m := range state.Meals {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO meals (id, seq, logged_at, food, servings, calories, is_custom) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				m.ID, i, formatTime(m.Date), m.Food, m.Servings, m.Calories, boolToInt(m.IsCustom),
			); err != nil {
				return fmt.Errorf("inserting meal %s: %w", m.ID, err)
			}
		}

		for i, f := range state.CustomFoods {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO custom_foods (name, seq, calories_per_serving) VALUES (?, ?, ?)`,
				f.Name, i, f.CaloriesPerServing,
			); err != nil {
				return fmt.Errorf("inserting custom food %q: %w", f.Name, err)
			}
		}

		for i, t := range state.Templates {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO templates (name, seq, body_parts, created_at) VALUES (?, ?, ?, ?)`,
				t.Name, i, joinBodyParts(t.BodyParts), formatTime(t.CreatedAt),
			); err != nil {
				return fmt.Errorf("inserting template %q: %w", t.Name, err)
			}
			for pos, ex := range t.Exercises {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO template_exercises (template_name, position, exercise, body_part) VALUES (?, ?, ?, ?)`,
					t.Name, pos, ex.Exercise, string(ex.BodyPart),
				); err != nil {
					return fmt.Errorf("inserting exercise %d of template %q: %w", pos+1, t.Name, err)
				}
			}
		}
		return nil
	})
}

// Backup writes a consistent copy of the database next to the original.
// In-memory databases have nothing to copy.
func (r *SQLiteStateRepo) Backup(ctx context.Context, suffix string) (string, error) {
	if r.path == "" || r.path == db.MemoryPath {
		return "", nil
	}
	dst := r.path + suffix
	if _, err := r.db.ExecContext(ctx, `VACUUM INTO ?`, dst); err != nil {
		return "", fmt.Errorf("backing up database to %s: %w", dst, err)
	}
	return dst, nil
}

func (r *SQLiteStateRepo) loadSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *SQLiteStateRepo) loadWorkouts(ctx context.Context) ([]domain.WorkoutEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, logged_at, exercise, body_parts, notes FROM workouts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}
	defer rows.Close()

	var workouts []domain.WorkoutEntry
	index := map[string]int{}
	for rows.Next() {
		var w domain.WorkoutEntry
		var loggedAt, parts string
		if err := rows.Scan(&w.ID, &loggedAt, &w.Exercise, &parts, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		if w.Date, err = parseStoredTime("workout date", loggedAt); err != nil {
			return nil, err
		}
		if w.BodyParts, err = splitBodyParts(parts); err != nil {
			return nil, err
		}
		index[w.ID] = len(workouts)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}

	setRows, err := r.db.QueryContext(ctx,
		`SELECT workout_id, reps, weight FROM workout_sets ORDER BY workout_id, position`)
	if err != nil {
		return nil, fmt.Errorf("loading sets: %w", err)
	}
	defer setRows.Close()
	for setRows.Next() {
		var id string
		var s domain.Set
		if err := setRows.Scan(&id, &s.Reps, &s.Weight); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("set for unknown workout %s: %w", id, domain.ErrCorruptData)
		}
		workouts[i].Sets = append(workouts[i].Sets, s)
	}
	return workouts, setRows.Err()
}

func (r *SQLiteStateRepo) loadMeals(ctx context.Context) ([]domain.MealEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, logged_at, food, servings, calories, is_custom FROM meals ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading meals: %w", err)
	}
	defer rows.Close()

	var meals []domain.MealEntry
	for rows.Next() {
		var m domain.MealEntry
		var loggedAt string
		var custom int
		if err := rows.Scan(&m.ID, &loggedAt, &m.Food, &m.Servings, &m.Calories, &custom); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		if m.Date, err = parseStoredTime("meal date", loggedAt); err != nil {
			return nil, err
		}
		m.IsCustom = custom != 0
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *SQLiteStateRepo) loadCustomFoods(ctx context.Context) ([]domain.FoodCatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, calories_per_serving FROM custom_foods ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading custom foods: %w", err)
	}
	defer rows.Close()

	var foods []domain.FoodCatalogEntry
	for rows.Next() {
		var f domain.FoodCatalogEntry
		if err := rows.Scan(&f.Name, &f.CaloriesPerServing); err != nil {
			return nil, fmt.Errorf("scanning custom food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *SQLiteStateRepo) loadTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, body_parts, created_at FROM templates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.WorkoutTemplate
	index := map[string]int{}
	for rows.Next() {
		var t domain.WorkoutTemplate
		var parts, created string
		if err := rows.Scan(&t.Name, &parts, &created); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if t.BodyParts, err = splitBodyParts(parts); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = parseStoredTime("template created", created); err != nil {
			return nil, err
		}
		index[t.Name] = len(templates)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}

	exRows, err := r.db.QueryContext(ctx,
		`SELECT template_name, exercise, body_part FROM template_exercises ORDER BY template_name, position`)
	if err != nil {
		return nil, fmt.Errorf("loading template exercises: %w", err)
	}
	defer exRows.Close()
	for exRows.Next() {
		var name, exercise, part string
		if err := exRows.Scan(&name, &exercise, &part); err != nil {
			return nil, fmt.Errorf("scanning template exercise: %w", err)
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("exercise for unknown template %q: %w", name, domain.ErrCorruptData)
		}
		bp, err := domain.ParseBodyPart(part)
		if err != nil {
			return nil, fmt.Errorf("template %q: %v: %w", name, err, domain.ErrCorruptData)
		}
		templates[i].Exercises = append(templates[i].Exercises, domain.TemplateExercise{Exercise: exercise, BodyPart: bp})
	}
	return templates, exRows.Err()
}
