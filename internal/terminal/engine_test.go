package terminal

import (
	"strings"
	"testing"

	"termfolio/internal/profile"
	"termfolio/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() profile.Data {
	return profile.Data{
		Name:  "Jane Doe",
		Title: "Platform Engineer",
		Bio:   profile.Bio("Platform Engineer"),
		Skills: []profile.Skill{
			{Name: "Go", Level: "expert", Percentage: 90},
			{Name: "Kubernetes", Level: "advanced", Percentage: 75},
		},
		Projects: []profile.Project{
			{Name: "termfolio", Description: "terminal portfolio", Featured: true},
			{Name: "edge-cache", Description: "object storage cache", Featured: true},
		},
		Contact: profile.ContactInfo{Email: "jane@example.com"},
	}
}

func newEngine(t *testing.T, data profile.Data) (*Engine, *profile.Store, *theme.Controller) {
	t.Helper()
	store := profile.NewStore(data)
	themes := theme.NewController(theme.Green)
	e, err := New(store, themes)
	require.NoError(t, err)
	return e, store, themes
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestNew_MissingCollaborators(t *testing.T) {
	_, err := New(nil, theme.NewController(theme.Green))
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = New(profile.NewStore(profile.Data{}), nil)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestNew_WelcomeLines(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{
		"Welcome to jane-doe@portfolio",
		`Type "help" for available commands.`,
		"",
	}, texts(e.Transcript()))
	assert.NotEmpty(t, e.SessionID())
}

func TestSubmit_BlankInputEchoesOnly(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		e, _, _ := newEngine(t, testProfile())
		before := len(e.Transcript())

		lines := e.Submit(input)

		assert.Empty(t, lines)
		transcript := e.Transcript()
		require.Len(t, transcript, before+1)
		assert.Equal(t, LineEcho, transcript[before].Kind)
		assert.Equal(t, StateIdle, e.State())
	}
}

func TestSubmit_EchoIsVerbatim(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	e.Submit("  WhoAmI  ")
	transcript := e.Transcript()
	assert.Contains(t, texts(transcript), "$   WhoAmI  ")
	assert.Equal(t, "Jane Doe", transcript[len(transcript)-1].Text)
}

func TestSubmit_EchoStripsControlSequences(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	e.Echo("\x1b[31mred\x1b[0m\a")
	transcript := e.Transcript()
	assert.Equal(t, "$ red", transcript[len(transcript)-1].Text)
	assert.Equal(t, StateExecuting, e.State())
}

func TestHelp_IndependentOfProfile(t *testing.T) {
	full, _, _ := newEngine(t, testProfile())
	empty, _, _ := newEngine(t, profile.Data{})

	a := texts(full.Submit("help"))
	b := texts(empty.Submit("HELP"))

	assert.Equal(t, a, b)
	assert.Equal(t, "Available commands:", a[0])
	assert.Equal(t, "  help       - show this help", a[1])
	for _, name := range []string{"help", "whoami", "about", "skills", "projects", "contact", "neofetch", "theme", "clear", "exit"} {
		assert.True(t, containsPrefix(a, "  "+name+" "), name)
	}
	assert.Len(t, a, 12)
}

func TestCommands_TableOrder(t *testing.T) {
	e, _, _ := newEngine(t, profile.Data{})

	var names []string
	for _, c := range e.Commands() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"help", "whoami", "about", "skills", "projects", "contact", "neofetch", "theme", "clear", "exit"}, names)
}

func containsPrefix(lines []string, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func TestWhoami(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{"Jane Doe"}, texts(e.Submit("whoami")))

	anon, _, _ := newEngine(t, profile.Data{})
	assert.Equal(t, []string{"Unknown User"}, texts(anon.Submit("whoami")))
}

func TestAbout(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{
		"Seasoned platform engineer. Building reliable software and scalable systems.",
		"",
	}, texts(e.Submit("about")))
}

func TestSkills_OneLinePerSkillInOrder(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{
		"Technical Skills:",
		"  go (expert) - 90%",
		"  kubernetes (advanced) - 75%",
		"",
	}, texts(e.Submit("skills")))
}

func TestProjects_Numbered(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{
		"Projects:",
		"  1. termfolio - terminal portfolio",
		"  2. edge-cache - object storage cache",
		"",
	}, texts(e.Submit("projects")))
}

func TestContact_Fallbacks(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{
		"Contact Information:",
		"Email: jane@example.com",
		"LinkedIn: Not provided",
		"",
	}, texts(e.Submit("contact")))
}

func TestNeofetch(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	lines := e.Submit("neofetch")

	require.NotEmpty(t, lines)
	assert.Equal(t, LineArt, lines[0].Kind)
	assert.Contains(t, lines[0].Text, "|o_o |")
	assert.Contains(t, lines[0].Text, `     //   \\ \\`)
	assert.Contains(t, lines[0].Text, "   /'\\\\_   _/\\` \\\\")
	assert.Contains(t, lines[0].Text, `   \\___)=(___/`)
	assert.Equal(t, []string{
		"jane-doe@portfolio",
		strings.Repeat("─", 26),
		"OS: Arch Linux x86_64",
		"Kernel: 6.8.9-zen",
		"Shell: zsh 5.9",
		"User: Jane Doe",
		"Title: Platform Engineer",
		"Skills: 2 languages/frameworks",
		"Projects: 2 repositories",
		"",
	}, texts(lines[1:]))
	for _, l := range lines[1:] {
		assert.Equal(t, LineOutput, l.Kind)
	}
}

func TestTheme_CyclesController(t *testing.T) {
	e, _, themes := newEngine(t, testProfile())
	assert.Equal(t, []string{"Theme cycled!", ""}, texts(e.Submit("theme")))
	assert.Equal(t, theme.Amber, themes.Current())
}

func TestTheme_SubscriberMayReadTranscript(t *testing.T) {
	e, _, themes := newEngine(t, testProfile())
	var seen int
	themes.Subscribe(theme.BindingFunc(func(theme.Palette) { seen = len(e.Transcript()) }))

	e.Submit("theme")

	assert.Positive(t, seen)
}

func TestClear_LeavesNothingButInput(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	e.Submit("help")
	e.Submit("skills")

	lines := e.Submit("clear")

	assert.Empty(t, lines)
	assert.Empty(t, e.Transcript())
	assert.Equal(t, StateIdle, e.State())
}

func TestExit_KeepsSessionActive(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	assert.Equal(t, []string{"Connection closed.", ""}, texts(e.Submit("exit")))
	assert.Equal(t, []string{"Jane Doe"}, texts(e.Submit("whoami")))
}

func TestUnknownCommand(t *testing.T) {
	e, store, themes := newEngine(t, testProfile())
	before := store.Get()

	lines := e.Submit("foobar")

	assert.Equal(t, []string{
		"Command not found: foobar",
		`Type "help" for available commands.`,
		"",
	}, texts(lines))
	assert.Equal(t, before, store.Get())
	assert.Equal(t, theme.Green, themes.Current())
}

func TestCommandsTakeNoArguments(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())
	lines := e.Submit("help me")
	assert.Equal(t, "Command not found: help me", lines[0].Text)
}

func TestProfileChangesAreVisible(t *testing.T) {
	e, store, _ := newEngine(t, testProfile())
	name := "John Roe"
	store.Merge(profile.Patch{Name: &name})
	assert.Equal(t, []string{"John Roe"}, texts(e.Submit("whoami")))
	assert.Equal(t, "john-roe", e.Handle())
}

func TestComplete(t *testing.T) {
	e, _, _ := newEngine(t, testProfile())

	assert.Len(t, e.Complete(""), len(e.Commands()))
	assert.Equal(t, "help", e.Complete("he")[0])
	assert.Equal(t, "clear", e.Complete("CL")[0])
	assert.Contains(t, e.Complete("nfetch"), "neofetch")
	assert.Empty(t, e.Complete("zzz"))
}
