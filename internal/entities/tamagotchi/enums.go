package tamagotchi

import "strings"

// Gender is the stable tag for a creature's gender
type Gender string

// Gender values
const (
	GenderUnspecified Gender = ""
	GenderBoy         Gender = "GENDER_BOY"
	GenderGirl        Gender = "GENDER_GIRL"
)

// IsValid reports whether g is a known gender
func (g Gender) IsValid() bool {
	return g == GenderBoy || g == GenderGirl
}

// ParseGender accepts a tag ("GENDER_GIRL") or a short form ("girl"), case-insensitive
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boy", "gender_boy", "b", "m":
		return GenderBoy, true
	case "girl", "gender_girl", "g", "f":
		return GenderGirl, true
	default:
		return GenderUnspecified, false
	}
}

// Mood is derived from vitals by ComputeMood
type Mood string

// Mood values
const (
	MoodUnspecified Mood = ""
	MoodHappy       Mood = "MOOD_HAPPY"
	MoodExcited     Mood = "MOOD_EXCITED"
	MoodNeutral     Mood = "MOOD_NEUTRAL"
	MoodSad         Mood = "MOOD_SAD"
	MoodAngry       Mood = "MOOD_ANGRY"
	MoodTired       Mood = "MOOD_TIRED"
	MoodSick        Mood = "MOOD_SICK"
)

// AgeGroup buckets AgeDays
type AgeGroup string

// AgeGroup values
const (
	AgeGroupUnspecified AgeGroup = ""
	AgeGroupToddler     AgeGroup = "AGE_GROUP_TODDLER"
	AgeGroupPreschooler AgeGroup = "AGE_GROUP_PRESCHOOLER"
	AgeGroupSchoolchild AgeGroup = "AGE_GROUP_SCHOOLCHILD"
	AgeGroupTeenager    AgeGroup = "AGE_GROUP_TEENAGER"
	AgeGroupAdult       AgeGroup = "AGE_GROUP_ADULT"
)

// IsSchoolAge reports whether the group goes to school during the daily routine
func (a AgeGroup) IsSchoolAge() bool {
	return a == AgeGroupSchoolchild || a == AgeGroupTeenager
}

// CareAction identifies a discrete care action
type CareAction string

// CareAction values
const (
	CareActionUnspecified CareAction = ""
	CareActionFeed        CareAction = "CARE_ACTION_FEED"
	CareActionWash        CareAction = "CARE_ACTION_WASH"
	CareActionSleep       CareAction = "CARE_ACTION_SLEEP"
	CareActionWake        CareAction = "CARE_ACTION_WAKE"
	CareActionHeal        CareAction = "CARE_ACTION_HEAL"
	CareActionStudy       CareAction = "CARE_ACTION_STUDY"
	CareActionPlay        CareAction = "CARE_ACTION_PLAY"
	CareActionArt         CareAction = "CARE_ACTION_ART"
)

// CareActions lists every care action in menu order
var CareActions = []CareAction{
	CareActionFeed,
	CareActionWash,
	CareActionSleep,
	CareActionWake,
	CareActionHeal,
	CareActionStudy,
	CareActionPlay,
	CareActionArt,
}

// IsValid reports whether a is a known care action
func (a CareAction) IsValid() bool {
	for _, known := range CareActions {
		if a == known {
			return true
		}
	}
	return false
}

// IsWork reports whether the action counts toward forced rest
func (a CareAction) IsWork() bool {
	return a == CareActionStudy || a == CareActionPlay || a == CareActionArt
}

// Attribute names a numeric creature attribute a life event can touch
type Attribute string

// Attribute values
const (
	AttributeHealth       Attribute = "ATTRIBUTE_HEALTH"
	AttributeHappiness    Attribute = "ATTRIBUTE_HAPPINESS"
	AttributeIntelligence Attribute = "ATTRIBUTE_INTELLIGENCE"
	AttributeMoney        Attribute = "ATTRIBUTE_MONEY"
	AttributeSocial       Attribute = "ATTRIBUTE_SOCIAL"
	AttributeCreativity   Attribute = "ATTRIBUTE_CREATIVITY"
	AttributeReputation   Attribute = "ATTRIBUTE_REPUTATION"
	AttributeDiscipline   Attribute = "ATTRIBUTE_DISCIPLINE"
)

// Bucket names an accumulator a life event feeds
type Bucket string

// Bucket values
const (
	BucketCareer    Bucket = "BUCKET_CAREER"
	BucketCriminal  Bucket = "BUCKET_CRIMINAL"
	BucketHappiness Bucket = "BUCKET_HAPPINESS"
)

// Destiny is the terminal outcome evaluated once a creature is old enough
type Destiny string

// Destiny values
const (
	DestinyUnspecified Destiny = ""
	DestinyRich        Destiny = "DESTINY_RICH"
	DestinyPrison      Destiny = "DESTINY_PRISON"
	DestinyIll         Destiny = "DESTINY_ILL"
	DestinyProdigy     Destiny = "DESTINY_PRODIGY"
	DestinyAverage     Destiny = "DESTINY_AVERAGE"
)
