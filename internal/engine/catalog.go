package engine

import (
	"strings"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
)

// LifeEventTemplate is a catalog entry. Text may use {name}, {he} and {his}.
type LifeEventTemplate struct {
	Text   string
	Effect tamagotchi.LifeEventEffect
}

// LifeEvents is the catalog DrawLifeEvent picks from uniformly
var LifeEvents = []LifeEventTemplate{
	{
		Text: "{name} found a wallet in the park and handed it in. Everyone at school is proud of {his} honesty!",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeReputation, AttributeDelta: 10,
			Bucket: tamagotchi.BucketCareer, BucketDelta: 5,
		},
	},
	{
		Text: "{name} got into a fight in the schoolyard and came home with a bruise.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeHealth, AttributeDelta: -10,
			Bucket: tamagotchi.BucketCriminal, BucketDelta: 5,
		},
	},
	{
		Text: "{name} won the city maths olympiad! {he} beat kids two years older.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeIntelligence, AttributeDelta: 10,
			Bucket: tamagotchi.BucketCareer, BucketDelta: 10,
		},
	},
	{
		Text: "{name} was caught shoplifting sweets. The shop called {his} parents.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeReputation, AttributeDelta: -15,
			Bucket: tamagotchi.BucketCriminal, BucketDelta: 10,
		},
	},
	{
		Text: "{name} helped an elderly neighbour carry shopping upstairs.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeSocial, AttributeDelta: 5,
			Bucket: tamagotchi.BucketHappiness, BucketDelta: 10,
		},
	},
	{
		Text: "{name} kicked a ball through the neighbour's window. {he} has to pay for the glass.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeMoney, AttributeDelta: -10,
			Bucket: tamagotchi.BucketCriminal, BucketDelta: 3,
		},
	},
	{
		Text: "{name} wrote a poem and the school newspaper printed it.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeCreativity, AttributeDelta: 10,
			Bucket: tamagotchi.BucketCareer, BucketDelta: 5,
		},
	},
	{
		Text: "{name} caught a nasty cold and spent the day sneezing.",
		Effect: tamagotchi.LifeEventEffect{
			Attribute: tamagotchi.AttributeHealth, AttributeDelta: -15,
			Bucket: tamagotchi.BucketHappiness, BucketDelta: -10,
		},
	},
}

// RenderLifeEvent fills the name and pronoun placeholders
func RenderLifeEvent(text, name string, gender tamagotchi.Gender) string {
	he, his := "He", "his"
	if gender == tamagotchi.GenderGirl {
		he, his = "She", "her"
	}
	return strings.NewReplacer("{name}", name, "{he}", he, "{his}", his).Replace(text)
}

// Wake-up lines, chosen by discipline
var (
	WakeDisciplined = []string{
		"%s jumps out of bed before the alarm rings.",
		"%s wakes up on time and does a quick stretch.",
		"%s is already up and dressed when the alarm goes off.",
	}
	WakeSleepy = []string{
		"%s hits snooze three times before crawling out of bed.",
		"%s is dragged out of bed, yawning and grumbling.",
		"%s wakes up late and rushes around the flat.",
	}
)

// Skill counters an evening activity can practise
const (
	SkillSport = "sport"
	SkillArt   = "art"
	SkillMusic = "music"
)

// EveningActivity is a catalog entry for the evening step
type EveningActivity struct {
	Text  string
	Skill string
}

// EveningActivities is picked from uniformly during the routine
var EveningActivities = []EveningActivity{
	{Text: "%s plays football with friends in the yard.", Skill: SkillSport},
	{Text: "%s reads a book about space."},
	{Text: "%s draws a comic about a brave cat.", Skill: SkillArt},
	{Text: "%s practises the piano.", Skill: SkillMusic},
	{Text: "%s builds a castle out of building blocks."},
	{Text: "%s watches cartoons with the family."},
}

// Facts is the genetics trivia catalog
var Facts = []string{
	"Human DNA is about 99.9% identical from one person to the next.",
	"Mutations are not always bad. Without them there would be no evolution.",
	"People share roughly half of their genes with bananas.",
	"You inherit half of your genes from your mother and half from your father.",
	"Eye colour depends on several genes, not just one.",
}
