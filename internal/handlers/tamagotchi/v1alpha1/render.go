package v1alpha1

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tamagotchi-api/internal/engine"
	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/leaderboard"
)

// Display strings live here only; everything below the handler uses stable tags.

var genderLabels = map[tamagotchi.Gender]string{
	tamagotchi.GenderBoy:  "boy",
	tamagotchi.GenderGirl: "girl",
}

var moodLabels = map[tamagotchi.Mood]string{
	tamagotchi.MoodHappy:   "😊 happy",
	tamagotchi.MoodExcited: "🤩 excited",
	tamagotchi.MoodNeutral: "😐 neutral",
	tamagotchi.MoodSad:     "😢 sad",
	tamagotchi.MoodAngry:   "😠 angry",
	tamagotchi.MoodTired:   "😴 tired",
	tamagotchi.MoodSick:    "🤒 sick",
}

var ageGroupLabels = map[tamagotchi.AgeGroup]string{
	tamagotchi.AgeGroupToddler:     "toddler",
	tamagotchi.AgeGroupPreschooler: "preschooler",
	tamagotchi.AgeGroupSchoolchild: "schoolchild",
	tamagotchi.AgeGroupTeenager:    "teenager",
	tamagotchi.AgeGroupAdult:       "adult",
}

var destinyLabels = map[tamagotchi.Destiny]string{
	tamagotchi.DestinyRich:    "💰 Rich and successful",
	tamagotchi.DestinyPrison:  "🚓 Ended up in prison",
	tamagotchi.DestinyIll:     "🏥 Struggles with poor health",
	tamagotchi.DestinyProdigy: "🎓 A true prodigy",
	tamagotchi.DestinyAverage: "🏠 An ordinary, quiet life",
}

var attributeLabels = map[tamagotchi.Attribute]string{
	tamagotchi.AttributeHealth:       "health",
	tamagotchi.AttributeHappiness:    "happiness",
	tamagotchi.AttributeIntelligence: "intelligence",
	tamagotchi.AttributeMoney:        "money",
	tamagotchi.AttributeSocial:       "social",
	tamagotchi.AttributeCreativity:   "creativity",
	tamagotchi.AttributeReputation:   "reputation",
	tamagotchi.AttributeDiscipline:   "discipline",
}

var bucketLabels = map[tamagotchi.Bucket]string{
	tamagotchi.BucketCareer:    "career points",
	tamagotchi.BucketCriminal:  "criminal points",
	tamagotchi.BucketHappiness: "happiness",
}

var traitLabels = map[tamagotchi.Trait]string{
	tamagotchi.TraitEyes:   "👁️ Eyes",
	tamagotchi.TraitHair:   "💇 Hair",
	tamagotchi.TraitTalent: "🎯 Talent",
}

func label[K comparable](labels map[K]string, key K) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return "unknown"
}

var (
	mainMenu = [][]Button{
		{{Label: "📋 Status", Data: "status"}, {Label: "🌅 Live a day", Data: "daily"}},
		{{Label: "🧸 Care", Data: "care"}, {Label: "🎲 Event", Data: "event"}},
		{{Label: "🔮 Destiny", Data: "destiny"}, {Label: "🏆 Tournament", Data: "tournament"}},
		{{Label: "🧬 Genes", Data: "genes"}, {Label: "📔 Journal", Data: "journal"}},
	}
	careMenu = [][]Button{
		{{Label: "🍔 Feed", Data: "feed"}, {Label: "🛁 Wash", Data: "wash"}},
		{{Label: "🛏 Sleep", Data: "sleep"}, {Label: "⏰ Wake up", Data: "wakeup"}},
		{{Label: "💊 Heal", Data: "heal"}, {Label: "📚 Study", Data: "study"}},
		{{Label: "⚽ Play", Data: "play"}, {Label: "🎨 Draw", Data: "art"}},
		{{Label: "⬅️ Back", Data: "status"}},
	}
	genderMenu = [][]Button{
		{{Label: "👦 Boy", Data: "gender:boy"}, {Label: "👧 Girl", Data: "gender:girl"}},
	}
	noPetMenu = [][]Button{
		{{Label: "🐣 Hatch a pet", Data: "start"}},
	}
	genesMenu = [][]Button{
		{{Label: "📚 Explain", Data: "explain"}, {Label: "🧪 Fact", Data: "fact"}},
	}
)

func renderStatus(c *tamagotchi.Creature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🐣 %s, %s, %d years old (%s)\n",
		c.Name, label(genderLabels, c.Gender), c.AgeYears(), label(ageGroupLabels, c.AgeGroup))

	flags := []string{label(moodLabels, c.Mood)}
	if c.Sleeping {
		flags = append(flags, "💤 sleeping")
	}
	if c.Sick {
		flags = append(flags, "🤧 sick")
	}
	fmt.Fprintf(&b, "Mood: %s\n\n", strings.Join(flags, ", "))

	fmt.Fprintf(&b, "❤️ Health: %d\n", c.Health)
	fmt.Fprintf(&b, "🍔 Hunger: %d\n", c.Hunger)
	fmt.Fprintf(&b, "🛁 Hygiene: %d\n", c.Hygiene)
	fmt.Fprintf(&b, "⚡ Energy: %d\n", c.Energy)
	fmt.Fprintf(&b, "😊 Happiness: %d\n\n", c.Happiness)

	fmt.Fprintf(&b, "🧠 Intelligence: %d | 📏 Discipline: %d\n", c.Intelligence, c.Discipline)
	fmt.Fprintf(&b, "🤝 Social: %d | 🎨 Creativity: %d | ⭐ Reputation: %d\n", c.Social, c.Creativity, c.Reputation)
	fmt.Fprintf(&b, "💰 Money: %d | 💼 Career: %d | 🚓 Criminal: %d\n", c.Money, c.CareerPoints, c.CriminalPoints)
	fmt.Fprintf(&b, "Skills: sport %d, academics %d, art %d, music %d",
		c.Skills.Sport, c.Skills.Academics, c.Skills.Art, c.Skills.Music)

	return b.String()
}

func renderVitals(c *tamagotchi.Creature) string {
	return fmt.Sprintf("❤️ %d  🍔 %d  🛁 %d  ⚡ %d  😊 %d",
		c.Health, c.Hunger, c.Hygiene, c.Energy, c.Happiness)
}

func renderLifeEvent(e engine.LifeEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎲 %s\n", e.Text)
	if e.Effect.AttributeDelta != 0 {
		fmt.Fprintf(&b, "\n%s %+d", label(attributeLabels, e.Effect.Attribute), e.Effect.AttributeDelta)
	}
	if e.Effect.BucketDelta != 0 {
		fmt.Fprintf(&b, "\n%s %+d", label(bucketLabels, e.Effect.Bucket), e.Effect.BucketDelta)
	}
	return b.String()
}

func renderDestiny(name string, r engine.DestinyReport) string {
	if r.Final {
		return fmt.Sprintf("🔮 %s's destiny: %s.", name, label(destinyLabels, r.Outcome))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔮 %s is too young for a verdict. So far:\n", name)
	fmt.Fprintf(&b, "💼 %.1f career points per year\n", r.CareerPerYear)
	fmt.Fprintf(&b, "🚓 %.1f criminal points per year", r.CriminalPerYear)
	for _, advice := range r.Advice {
		fmt.Fprintf(&b, "\n• %s", advice)
	}
	return b.String()
}

func renderLeaderboard(entries []leaderboard.Entry, position, total int) string {
	if total == 0 {
		return "🏆 The tournament is empty. Be the first: /start"
	}

	var b strings.Builder
	b.WriteString("🏆 Tournament\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s: %d", e.Position, e.Name, e.Rating)
	}
	if position > 0 {
		fmt.Fprintf(&b, "\n\nYour place: %d of %d", position, total)
	}
	return b.String()
}

func renderGenes(name string, genes tamagotchi.Genes, dominant bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧬 %s's genes\n", name)
	for _, trait := range tamagotchi.Traits {
		g := genes.Get(trait)
		kind := "recessive"
		if g.Dominant {
			kind = "dominant"
		}
		fmt.Fprintf(&b, "\n%s: %s (%s)", label(traitLabels, trait), strings.ReplaceAll(g.Allele, "_", " "), kind)
	}

	geneType := "recessive"
	if dominant {
		geneType = "dominant"
	}
	fmt.Fprintf(&b, "\n\n🔬 Gene type: %s", geneType)
	return b.String()
}

func renderJournal(name string, entries []*tamagotchi.JournalEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("📔 %s's journal is empty.", name)
	}

	var b strings.Builder
	b.WriteString("📔 Journal")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Text)
	}
	return b.String()
}

const explainText = "🔍 How genes work:\n\n" +
	"• Dominant genes 💪 show up more often\n" +
	"• Recessive genes 🕶️ can hide for generations\n" +
	"• Every pet gets its own unique mix!\n\n" +
	"A pet whose genes are mostly dominant has a dominant gene type."
