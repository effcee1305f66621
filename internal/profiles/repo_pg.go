package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, name, age, gender, skin_type, allergies, sleep_hours, water_intake,
       stress_level, diet, language, theme, custom_checklist, onboarded, created_at, updated_at
FROM profiles
WHERE user_id = $1`
	var (
		p           Profile
		age         sql.NullInt64
		gender      sql.NullString
		skinType    string
		allergies   []byte
		sleepHours  sql.NullFloat64
		waterIntake sql.NullFloat64
		stress      sql.NullString
		diet        sql.NullString
		language    string
		checklist   []byte
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.Name,
		&age,
		&gender,
		&skinType,
		&allergies,
		&sleepHours,
		&waterIntake,
		&stress,
		&diet,
		&language,
		&p.Theme,
		&checklist,
		&p.Onboarded,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.Age = int(age.Int64)
	p.Gender = gender.String
	p.SkinType = recommendations.SkinType(skinType)
	p.SleepHours = sleepHours.Float64
	p.WaterIntake = waterIntake.Float64
	p.StressLevel = StressLevel(stress.String)
	p.Diet = diet.String
	p.Language = i18n.Locale(language)
	if p.Allergies, err = decodeList(allergies); err != nil {
		return Profile{}, fmt.Errorf("decode allergies: %w", err)
	}
	if p.CustomChecklist, err = decodeList(checklist); err != nil {
		return Profile{}, fmt.Errorf("decode checklist: %w", err)
	}
	return p, nil
}

func (r *PGRepo) Save(ctx context.Context, p Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (user_id, name, age, gender, skin_type, allergies, sleep_hours, water_intake,
                      stress_level, diet, language, theme, custom_checklist, onboarded, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  name = EXCLUDED.name,
  age = EXCLUDED.age,
  gender = EXCLUDED.gender,
  skin_type = EXCLUDED.skin_type,
  allergies = EXCLUDED.allergies,
  sleep_hours = EXCLUDED.sleep_hours,
  water_intake = EXCLUDED.water_intake,
  stress_level = EXCLUDED.stress_level,
  diet = EXCLUDED.diet,
  language = EXCLUDED.language,
  theme = EXCLUDED.theme,
  custom_checklist = EXCLUDED.custom_checklist,
  onboarded = EXCLUDED.onboarded,
  updated_at = now()
RETURNING created_at, updated_at`
	allergies, err := encodeList(p.Allergies)
	if err != nil {
		return Profile{}, err
	}
	checklist, err := encodeList(p.CustomChecklist)
	if err != nil {
		return Profile{}, err
	}
	err = r.DB.QueryRowContext(ctx, query,
		p.UserID,
		p.Name,
		nullableInt(p.Age),
		nullableString(p.Gender),
		string(p.SkinType),
		allergies,
		p.SleepHours,
		p.WaterIntake,
		nullableString(string(p.StressLevel)),
		nullableString(p.Diet),
		string(p.Language),
		p.Theme,
		checklist,
		p.Onboarded,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
