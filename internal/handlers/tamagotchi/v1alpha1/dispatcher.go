// Package v1alpha1 turns chat updates into creature use cases and renders the replies.
// The Dispatcher is shared by the gRPC BotService and the WebSocket gateway.
package v1alpha1

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
	"github.com/KirkDiggler/tamagotchi-api/internal/orchestrators/creature"
)

const (
	pausedText   = "😴 The bot is sleeping. Please come back later."
	adminOnly    = "⛔ This command is for administrators only."
	noPetText    = "You have no pet yet. Send /start to hatch one!"
	unknownText  = "🤔 I don't know that one. Send /help to see what I can do."
	askGender    = "👶 Who will it be? Choose a boy or a girl."
	greetingText = "👋 Hi! I look after virtual children. Send /start to hatch yours or /help for all commands."
	geneHint     = "🧬 Genes are the instructions for a body! See your pet's genes with /genes"
	dnaHint      = "🔬 DNA is the molecule that stores genetic information. Want a fact? Try /fact"

	journalPageSize = 10
)

var greetings = map[string]struct{}{
	"hi":         {},
	"hello":      {},
	"hey":        {},
	"привет":     {},
	"здравствуй": {},
}

type commandFunc func(ctx context.Context, userID string, args []string) (*Reply, error)

type command struct {
	name        string
	aliases     []string
	description string
	adminOnly   bool
	run         commandFunc
}

// DispatcherConfig holds dependencies for the dispatcher
type DispatcherConfig struct {
	CreatureService creature.Service
	// AdminIDs may pause and resume the bot
	AdminIDs []string
}

// Validate ensures all required dependencies are present
func (c *DispatcherConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CreatureService == nil {
		return errors.InvalidArgument("creature service is required")
	}
	return nil
}

// Dispatcher routes updates to commands. It keeps two pieces of conversational
// state in memory: pending pet creations and the paused flag.
type Dispatcher struct {
	creatureService creature.Service
	admins          map[string]struct{}
	commands        []command
	byName          map[string]*command

	mu      sync.Mutex
	pending map[string]tamagotchi.Gender
	paused  bool
}

// NewDispatcher creates a dispatcher with the full command set
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		creatureService: cfg.CreatureService,
		admins:          make(map[string]struct{}, len(cfg.AdminIDs)),
		pending:         make(map[string]tamagotchi.Gender),
	}
	for _, id := range cfg.AdminIDs {
		if id = strings.TrimSpace(id); id != "" {
			d.admins[id] = struct{}{}
		}
	}

	d.commands = []command{
		{name: "start", description: "hatch a new pet (/start girl Alice)", run: d.start},
		{name: "status", description: "how is your pet doing", run: d.status},
		{name: "daily", description: "live through a whole day (one year of growing up)", run: d.daily},
		{name: "care", description: "open the care menu", run: d.careMenu},
		{name: "feed", description: "feed your pet", run: d.careAction(tamagotchi.CareActionFeed)},
		{name: "wash", description: "give your pet a wash", run: d.careAction(tamagotchi.CareActionWash)},
		{name: "sleep", description: "put your pet to bed", run: d.careAction(tamagotchi.CareActionSleep)},
		{name: "wakeup", description: "wake your pet up", run: d.careAction(tamagotchi.CareActionWake)},
		{name: "heal", description: "give your pet medicine", run: d.careAction(tamagotchi.CareActionHeal)},
		{name: "study", description: "do homework together", run: d.careAction(tamagotchi.CareActionStudy)},
		{name: "play", description: "play outside", run: d.careAction(tamagotchi.CareActionPlay)},
		{name: "art", description: "draw pictures", run: d.careAction(tamagotchi.CareActionArt)},
		{name: "event", description: "something unexpected happens", run: d.event},
		{name: "destiny", description: "what will your pet become", run: d.destiny},
		{name: "tournament", description: "the best pets of all players", run: d.tournament},
		{name: "rating", description: "your pet's rating and place", run: d.rating},
		{name: "journal", description: "your pet's life story", run: d.journal},
		{name: "genes", aliases: []string{"genebeast", "mydna"}, description: "your pet's genes", run: d.genes},
		{name: "explain", description: "how dominant and recessive genes work", run: d.explain},
		{name: "fact", description: "a fact about genetics", run: d.fact},
		{name: "help", description: "this list", run: d.help},
		{name: "pause", description: "put the bot to sleep", adminOnly: true, run: d.pause},
		{name: "resume", description: "wake the bot up", adminOnly: true, run: d.resume},
	}
	d.byName = make(map[string]*command, len(d.commands))
	for i := range d.commands {
		cmd := &d.commands[i]
		d.byName[cmd.name] = cmd
		for _, alias := range cmd.aliases {
			d.byName[alias] = cmd
		}
	}

	return d, nil
}

// Handle processes one update and always produces a reply unless the update itself
// is malformed
func (d *Dispatcher) Handle(ctx context.Context, update *Update) (*Reply, error) {
	if update == nil {
		return nil, errors.InvalidArgument("update is required")
	}
	userID := strings.TrimSpace(update.UserID)
	if userID == "" {
		return nil, errors.InvalidArgument("user_id is required")
	}

	name, args, isCommand := parseCommand(update)
	if !isCommand {
		if d.isPaused() {
			return textReply(pausedText), nil
		}
		return d.handleText(ctx, userID, strings.TrimSpace(update.Text))
	}

	cmd, ok := d.byName[name]
	if !ok && name == "gender" {
		if d.isPaused() {
			return textReply(pausedText), nil
		}
		return d.chooseGender(userID, args)
	}
	if !ok {
		if d.isPaused() {
			return textReply(pausedText), nil
		}
		return textReply(unknownText), nil
	}

	if d.isPaused() && name != "resume" && name != "status" {
		return textReply(pausedText), nil
	}
	if cmd.adminOnly && !d.isAdmin(userID) {
		return d.replyForError(ctx, userID, name, errors.PermissionDenied(adminOnly)), nil
	}

	// any other command abandons a half-finished /start
	if name != "start" {
		d.clearPending(userID)
	}

	slog.DebugContext(ctx, "dispatching command",
		"user_id", userID,
		"command", name)

	reply, err := cmd.run(ctx, userID, args)
	if err != nil {
		return d.replyForError(ctx, userID, name, err), nil
	}
	return reply, nil
}

// parseCommand recognises "/cmd args", "/cmd@botname args" and callback data
// ("feed", "gender:girl")
func parseCommand(update *Update) (string, []string, bool) {
	if data := strings.TrimSpace(update.CallbackData); data != "" {
		parts := strings.Split(data, ":")
		return strings.ToLower(parts[0]), parts[1:], true
	}

	text := strings.TrimSpace(update.Text)
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}

	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", nil, false
	}
	name := strings.ToLower(fields[0])
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return name, fields[1:], true
}

func (d *Dispatcher) replyForError(ctx context.Context, userID, name string, err error) *Reply {
	switch {
	case errors.IsNotFound(err):
		return textReply(noPetText).withButtons(noPetMenu)
	case errors.GetCode(err).UserFacing():
		return textReply(errors.UserMessage(err))
	default:
		slog.ErrorContext(ctx, "command failed",
			"user_id", userID,
			"command", name,
			"error", err.Error())
		return textReply(errors.GenericApology)
	}
}

func (d *Dispatcher) handleText(ctx context.Context, userID, text string) (*Reply, error) {
	if gender, ok := d.pendingGender(userID); ok {
		if gender == tamagotchi.GenderUnspecified {
			return textReply(askGender).withButtons(genderMenu), nil
		}
		return d.create(ctx, userID, gender, text)
	}

	lower := strings.ToLower(text)
	if _, ok := greetings[lower]; ok {
		return textReply(greetingText), nil
	}
	switch {
	case strings.Contains(lower, "gene") || strings.Contains(lower, "ген"):
		return textReply(geneHint), nil
	case strings.Contains(lower, "dna") || strings.Contains(lower, "днк"):
		return textReply(dnaHint), nil
	}
	return textReply(unknownText), nil
}

func (d *Dispatcher) start(ctx context.Context, userID string, args []string) (*Reply, error) {
	if len(args) == 0 {
		d.setPending(userID, tamagotchi.GenderUnspecified)
		return textReply(askGender).withButtons(genderMenu), nil
	}

	gender, ok := tamagotchi.ParseGender(args[0])
	if !ok {
		d.setPending(userID, tamagotchi.GenderUnspecified)
		return textReply("Gender must be boy or girl. " + askGender).withButtons(genderMenu), nil
	}

	if len(args) == 1 {
		d.setPending(userID, gender)
		return textReply(askName(gender)), nil
	}
	return d.create(ctx, userID, gender, strings.Join(args[1:], " "))
}

func (d *Dispatcher) chooseGender(userID string, args []string) (*Reply, error) {
	if len(args) == 0 {
		return textReply(askGender).withButtons(genderMenu), nil
	}
	gender, ok := tamagotchi.ParseGender(args[0])
	if !ok {
		return textReply("Gender must be boy or girl. " + askGender).withButtons(genderMenu), nil
	}
	d.setPending(userID, gender)
	return textReply(askName(gender)), nil
}

func askName(gender tamagotchi.Gender) string {
	return fmt.Sprintf("✏️ What will you call your %s? Send a name (%d to %d letters).",
		label(genderLabels, gender), tamagotchi.NameMinLength, tamagotchi.NameMaxLength)
}

// create finishes a pending /start. Validation failures keep the user in the
// naming step so the next message is tried as a name again.
func (d *Dispatcher) create(ctx context.Context, userID string, gender tamagotchi.Gender, name string) (*Reply, error) {
	out, err := d.creatureService.Start(ctx, &creature.StartInput{
		UserID: userID,
		Name:   name,
		Gender: gender,
	})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			d.setPending(userID, gender)
			return textReply(fmt.Sprintf("❌ %s\n%s", errors.UserMessage(err), askName(gender))), nil
		}
		return nil, err
	}
	d.clearPending(userID)

	c := out.Creature
	verb := "was born"
	if out.Replaced {
		verb = "was born and takes the place of your old pet"
	}
	text := fmt.Sprintf("🎉 %s %s!\n\n%s", c.Name, verb, renderStatus(c))
	return textReply(text).withButtons(mainMenu), nil
}

func (d *Dispatcher) status(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetStatus(ctx, &creature.GetStatusInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	text := renderStatus(out.Creature)
	if out.Drift.FellSick {
		text = fmt.Sprintf("🤧 %s fell ill while you were away. Try /heal.\n\n%s", out.Creature.Name, text)
	}
	if d.isPaused() {
		text = pausedText + "\n\n" + text
	}
	return textReply(text).withButtons(mainMenu), nil
}

func (d *Dispatcher) daily(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.RunDaily(ctx, &creature.RunDailyInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("🌅 A new day\n")
	for _, line := range out.Log {
		b.WriteString("\n• ")
		b.WriteString(line)
	}
	if out.AgeGroupChanged {
		fmt.Fprintf(&b, "\n\n🎈 %s is now a %s!", out.Creature.Name, label(ageGroupLabels, out.Creature.AgeGroup))
	}
	if out.Destiny != nil {
		b.WriteString("\n\n")
		b.WriteString(renderDestiny(out.Creature.Name, *out.Destiny))
	}
	fmt.Fprintf(&b, "\n\n%s", renderVitals(out.Creature))

	return textReply(b.String()).withButtons(mainMenu), nil
}

func (d *Dispatcher) careMenu(_ context.Context, _ string, _ []string) (*Reply, error) {
	return textReply("🧸 How will you take care of your pet?").withButtons(careMenu), nil
}

func (d *Dispatcher) careAction(action tamagotchi.CareAction) commandFunc {
	return func(ctx context.Context, userID string, _ []string) (*Reply, error) {
		out, err := d.creatureService.PerformCare(ctx, &creature.PerformCareInput{
			UserID: userID,
			Action: action,
		})
		if err != nil {
			return nil, err
		}

		text := out.Message
		if out.RestStarted {
			text += fmt.Sprintf("\n\n😮‍💨 %s is worn out and needs a break now.", out.Creature.Name)
		}
		text += "\n\n" + renderVitals(out.Creature)
		return textReply(text).withButtons(careMenu), nil
	}
}

func (d *Dispatcher) event(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.TriggerLifeEvent(ctx, &creature.TriggerLifeEventInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return textReply(renderLifeEvent(out.Event)).withButtons(mainMenu), nil
}

func (d *Dispatcher) destiny(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.EvaluateDestiny(ctx, &creature.EvaluateDestinyInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return textReply(renderDestiny(out.Creature.Name, out.Report)), nil
}

func (d *Dispatcher) tournament(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetLeaderboard(ctx, &creature.GetLeaderboardInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return textReply(renderLeaderboard(out.Entries, out.Position, out.Total)), nil
}

func (d *Dispatcher) rating(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetLeaderboard(ctx, &creature.GetLeaderboardInput{UserID: userID, Limit: 1})
	if err != nil {
		return nil, err
	}
	if out.Position == 0 {
		return textReply(noPetText).withButtons(noPetMenu), nil
	}
	return textReply(fmt.Sprintf("⭐ Rating: %d\n🏆 Place: %d of %d", out.Rating, out.Position, out.Total)), nil
}

func (d *Dispatcher) journal(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetJournal(ctx, &creature.GetJournalInput{UserID: userID, Limit: journalPageSize})
	if err != nil {
		return nil, err
	}
	return textReply(renderJournal(out.Name, out.Entries)), nil
}

func (d *Dispatcher) genes(ctx context.Context, userID string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetGenes(ctx, &creature.GetGenesInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return textReply(renderGenes(out.Name, out.Genes, out.Dominant)).withButtons(genesMenu), nil
}

func (d *Dispatcher) explain(_ context.Context, _ string, _ []string) (*Reply, error) {
	return textReply(explainText), nil
}

func (d *Dispatcher) fact(ctx context.Context, _ string, _ []string) (*Reply, error) {
	out, err := d.creatureService.GetFact(ctx, &creature.GetFactInput{})
	if err != nil {
		return nil, err
	}
	return textReply("📚 Genetics fact:\n\n" + out.Fact), nil
}

func (d *Dispatcher) help(_ context.Context, userID string, _ []string) (*Reply, error) {
	var b strings.Builder
	b.WriteString("📚 Commands:\n")
	admin := d.isAdmin(userID)
	for _, cmd := range d.commands {
		if cmd.adminOnly && !admin {
			continue
		}
		fmt.Fprintf(&b, "\n/%s - %s", cmd.name, cmd.description)
	}
	return textReply(b.String()).withButtons(mainMenu), nil
}

func (d *Dispatcher) pause(ctx context.Context, userID string, _ []string) (*Reply, error) {
	d.mu.Lock()
	d.paused = true
	d.mu.Unlock()

	slog.InfoContext(ctx, "bot paused", "admin_id", userID)
	return textReply("😴 Going to sleep. I will ignore everything except /resume and /status. Good night! 💤"), nil
}

func (d *Dispatcher) resume(ctx context.Context, userID string, _ []string) (*Reply, error) {
	d.mu.Lock()
	d.paused = false
	d.mu.Unlock()

	slog.InfoContext(ctx, "bot resumed", "admin_id", userID)
	return textReply("☀️ I'm awake and ready to play!"), nil
}

func (d *Dispatcher) isAdmin(userID string) bool {
	_, ok := d.admins[userID]
	return ok
}

func (d *Dispatcher) isPaused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

func (d *Dispatcher) pendingGender(userID string) (tamagotchi.Gender, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	g, ok := d.pending[userID]
	return g, ok
}

func (d *Dispatcher) setPending(userID string, gender tamagotchi.Gender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[userID] = gender
}

func (d *Dispatcher) clearPending(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.pending, userID)
}
