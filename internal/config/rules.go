package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Rules правила клуба для проверки ввода
type Rules struct {
	// Минимальный год рождения участника
	BirthYearMin int `toml:"birth_year_min"`
	// Минимальный год для расписания (клуб открылся 1 января 2022)
	ScheduleYearMin int `toml:"schedule_year_min"`

	WeightMinLbs float64 `toml:"weight_min_lbs"`
	WeightMaxLbs float64 `toml:"weight_max_lbs"`

	BodyFatMin float64 `toml:"body_fat_min"`
	BodyFatMax float64 `toml:"body_fat_max"`
}

func DefaultRules() Rules {
	return Rules{
		BirthYearMin:    1901,
		ScheduleYearMin: 2022,
		WeightMinLbs:    0,
		WeightMaxLbs:    1000,
		BodyFatMin:      3,
		BodyFatMax:      85,
	}
}

// LoadRules читает правила из TOML файла поверх значений по умолчанию.
// Пустой путь означает значения по умолчанию.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	if _, err := toml.DecodeFile(path, &rules); err != nil {
		return Rules{}, fmt.Errorf("decode club rules %s: %w", path, err)
	}

	if err := rules.validate(); err != nil {
		return Rules{}, fmt.Errorf("club rules %s: %w", path, err)
	}

	return rules, nil
}

func (r Rules) validate() error {
	if r.WeightMinLbs > r.WeightMaxLbs {
		return fmt.Errorf("weight_min_lbs must not exceed weight_max_lbs")
	}
	if r.BodyFatMin > r.BodyFatMax {
		return fmt.Errorf("body_fat_min must not exceed body_fat_max")
	}
	return nil
}
