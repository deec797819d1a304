package terminal

import (
	"fmt"
	"strings"

	"termfolio/internal/profile"
)

// Command is one entry of the fixed command table.
type Command struct {
	Name        string
	Description string

	run    func(e *Engine, p profile.Data) []Line
	clears bool
}

const tux = `       .--.
      |o_o |
      |:_/ |
     //   \\ \\
    (|     | )
   /'\\_   _/\` + "`" + ` \\
   \\___)=(___/`

// commandTable is ordered the way help lists it. It is filled in init
// because help ranges over it.
var commandTable []Command

func init() {
	commandTable = []Command{
		{Name: "help", Description: "show this help", run: runHelp},
		{Name: "whoami", Description: "display user info", run: runWhoami},
		{Name: "about", Description: "show bio information", run: runAbout},
		{Name: "skills", Description: "list technical skills", run: runSkills},
		{Name: "projects", Description: "show project portfolio", run: runProjects},
		{Name: "contact", Description: "display contact info", run: runContact},
		{Name: "neofetch", Description: "system information", run: runNeofetch},
		{Name: "theme", Description: "cycle color themes", run: runTheme},
		{Name: "clear", Description: "clear terminal", run: runClear, clears: true},
		{Name: "exit", Description: "close terminal session", run: runExit},
	}
}

func lookup(name string) (Command, bool) {
	for _, c := range commandTable {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

func runHelp(_ *Engine, _ profile.Data) []Line {
	lines := []Line{out("Available commands:")}
	for _, c := range commandTable {
		lines = append(lines, out(fmt.Sprintf("  %-10s - %s", c.Name, c.Description)))
	}
	return append(lines, blank())
}

func runWhoami(_ *Engine, p profile.Data) []Line {
	if p.Name == "" {
		return []Line{out("Unknown User")}
	}
	return []Line{out(p.Name)}
}

func runAbout(_ *Engine, p profile.Data) []Line {
	return []Line{out(p.Bio), blank()}
}

func runSkills(_ *Engine, p profile.Data) []Line {
	lines := []Line{out("Technical Skills:")}
	for _, s := range p.Skills {
		lines = append(lines, out(fmt.Sprintf("  %s (%s) - %d%%", strings.ToLower(s.Name), s.Level, s.Percentage)))
	}
	return append(lines, blank())
}

func runProjects(_ *Engine, p profile.Data) []Line {
	lines := []Line{out("Projects:")}
	for i, pr := range p.Projects {
		lines = append(lines, out(fmt.Sprintf("  %d. %s - %s", i+1, pr.Name, pr.Description)))
	}
	return append(lines, blank())
}

func runContact(_ *Engine, p profile.Data) []Line {
	return []Line{
		out("Contact Information:"),
		out("Email: " + orNotProvided(p.Contact.Email)),
		out("LinkedIn: " + orNotProvided(p.Contact.LinkedIn)),
		blank(),
	}
}

func runNeofetch(_ *Engine, p profile.Data) []Line {
	return []Line{
		{Kind: LineArt, Text: tux},
		out(p.Handle() + "@portfolio"),
		out(strings.Repeat("─", 26)),
		out("OS: Arch Linux x86_64"),
		out("Kernel: 6.8.9-zen"),
		out("Shell: zsh 5.9"),
		out("User: " + p.Name),
		out("Title: " + p.Title),
		out(fmt.Sprintf("Skills: %d languages/frameworks", len(p.Skills))),
		out(fmt.Sprintf("Projects: %d repositories", len(p.Projects))),
		blank(),
	}
}

func runTheme(e *Engine, _ profile.Data) []Line {
	e.themes.CycleTheme()
	return []Line{out("Theme cycled!"), blank()}
}

// clear emits nothing; the engine drops the transcript itself.
func runClear(_ *Engine, _ profile.Data) []Line {
	return nil
}

// exit is cosmetic: the session and its input stay active.
func runExit(_ *Engine, _ profile.Data) []Line {
	return []Line{out("Connection closed."), blank()}
}

func notFound(raw string) []Line {
	return []Line{
		out("Command not found: " + sanitize(raw)),
		out(`Type "help" for available commands.`),
		blank(),
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
