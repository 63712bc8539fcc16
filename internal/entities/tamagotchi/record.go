package tamagotchi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// SchemaVersion is the version written by EncodeRecord
const SchemaVersion = 2

// Record is the persisted form of a Creature. Enums are stored as their stable tags.
type Record struct {
	SchemaVersion int `json:"schema_version"`
	Creature
}

// migration upgrades a decoded record from version n to n+1 in place
type migration func(raw map[string]any) error

// migrations[n] upgrades version n to n+1
var migrations = map[int]migration{
	1: migrateV1ToV2,
}

// EncodeRecord serialises c at the current schema version
func EncodeRecord(c *Creature) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	data, err := json.Marshal(&Record{SchemaVersion: SchemaVersion, Creature: *c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode creature %s", c.UserID)
	}
	return data, nil
}

// DecodeRecord parses a record of any known schema version, migrating it to the current one.
// A record without schema_version is treated as version 1.
func DecodeRecord(data []byte) (*Creature, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "creature record is not valid JSON")
	}

	version, err := recordVersion(raw)
	if err != nil {
		return nil, err
	}

	for v := version; v < SchemaVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return nil, errors.DataLossf("no migration from schema version %d", v)
		}
		if err := migrate(raw); err != nil {
			return nil, errors.Wrapf(err, "failed to migrate creature record from version %d", v)
		}
	}
	raw["schema_version"] = SchemaVersion

	upgraded, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode migrated record")
	}

	var rec Record
	if err := json.Unmarshal(upgraded, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "creature record has unexpected field types")
	}

	c := &rec.Creature
	if c.UserID == "" {
		return nil, errors.DataLossf("creature record has no user_id")
	}
	if !c.Gender.IsValid() {
		return nil, errors.DataLossf("creature %s has unknown gender %q", c.UserID, c.Gender)
	}

	c.ClampAll()
	if c.AgeGroup == AgeGroupUnspecified {
		c.AgeGroup = AgeGroupFor(c.AgeDays)
	}
	if c.Mood == MoodUnspecified {
		c.Mood = ComputeMood(c)
	}
	return c, nil
}

func recordVersion(raw map[string]any) (int, error) {
	v, ok := raw["schema_version"]
	if !ok {
		return 1, nil
	}
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) || f < 1 {
		return 0, errors.DataLossf("invalid schema_version %v", v)
	}
	if int(f) > SchemaVersion {
		return 0, errors.DataLossf("schema_version %d is newer than supported %d", int(f), SchemaVersion)
	}
	return int(f), nil
}

// legacy display strings written by version 1 records
var (
	legacyGenders = map[string]Gender{
		"boy":  GenderBoy,
		"girl": GenderGirl,
	}
	legacyMoods = map[string]Mood{
		"happy":   MoodHappy,
		"excited": MoodExcited,
		"neutral": MoodNeutral,
		"sad":     MoodSad,
		"angry":   MoodAngry,
		"tired":   MoodTired,
		"sick":    MoodSick,
	}
	legacyRenames = map[string]string{
		"is_sleeping":  "sleeping",
		"is_sick":      "sick",
		"is_at_school": "at_school",
		"daily_stats":  "daily",
	}
	legacyDailyRenames = map[string]string{
		"lessons":       "lessons_attended",
		"meals":         "meals_eaten",
		"study":         "study_sessions",
		"entertainment": "entertainment_sessions",
	}
	v2Defaults = map[string]any{
		"health":       StatMax,
		"hunger":       StatMin,
		"hygiene":      StatMax,
		"energy":       StatMax,
		"happiness":    StatMax,
		"intelligence": 10,
		"money":        0,
		"discipline":   50,
		"social":       10,
		"creativity":   10,
		"reputation":   50,
		"age_days":     StartAgeDays,
	}
)

func migrateV1ToV2(raw map[string]any) error {
	gender, _ := raw["gender"].(string)
	tag, ok := legacyGenders[strings.ToLower(strings.TrimSpace(gender))]
	if !ok {
		return errors.DataLossf("unknown legacy gender %q", gender)
	}
	raw["gender"] = string(tag)

	// unknown moods are recomputed after decode
	mood, _ := raw["mood"].(string)
	if m, ok := legacyMoods[strings.ToLower(strings.TrimSpace(mood))]; ok {
		raw["mood"] = string(m)
	} else {
		delete(raw, "mood")
	}

	delete(raw, "age_group")

	for from, to := range legacyRenames {
		if v, ok := raw[from]; ok {
			raw[to] = v
			delete(raw, from)
		}
	}

	if daily, ok := raw["daily"].(map[string]any); ok {
		for from, to := range legacyDailyRenames {
			if v, ok := daily[from]; ok {
				daily[to] = v
				delete(daily, from)
			}
		}
	}

	for key, def := range v2Defaults {
		if _, ok := raw[key]; !ok {
			raw[key] = def
		}
	}

	// v1 stored numbers that could be fractional after hand edits
	for key := range v2Defaults {
		if f, ok := raw[key].(float64); ok {
			raw[key] = int(f)
		}
	}

	if _, ok := raw["user_id"].(string); !ok {
		if id, ok := raw["user_id"].(float64); ok {
			raw["user_id"] = fmt.Sprintf("%d", int64(id))
		}
	}

	return nil
}
