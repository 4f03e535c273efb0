package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dojo/internal/editor"
	"dojo/internal/language"
	"dojo/internal/ledger"
	"dojo/internal/platform"
	"dojo/internal/prompt"
	"dojo/internal/scaffold"
	"dojo/internal/session"
)

// runPractice drives one interactive scaffolding session: collect input,
// run the pipeline, report the outcome.
func runPractice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := prompt.New()
	if err != nil {
		return err
	}
	defer p.Close()

	p.ClearScreen()
	fmt.Println(prompt.Title("Welcome to the CP Dojo!"))
	fmt.Println()

	// Platform menu
	platforms := platform.All()
	platformNames := make([]string, len(platforms))
	for i, pl := range platforms {
		platformNames[i] = string(pl)
	}
	platformIdx, err := p.Select("Select the platform you're using:", platformNames)
	if err != nil {
		return err
	}

	// Language menu
	p.ClearScreen()
	languages := language.All()
	languageNames := make([]string, len(languages))
	for i, l := range languages {
		languageNames[i] = l.Name
	}
	languageIdx, err := p.Select("Select the language you're using:", languageNames)
	if err != nil {
		return err
	}

	url, err := p.Line("Paste the problem link: ")
	if err != nil {
		return err
	}
	difficulty, err := p.Line("Difficulty (optional): ")
	if err != nil {
		return err
	}
	tagsLine, err := p.Line("Tags (comma-separated, optional): ")
	if err != nil {
		return err
	}

	catalog, err := ledger.OpenCatalog(cfg.CatalogPath())
	if err != nil {
		return err
	}
	defer catalog.Close()

	s := &session.Session{
		Workspace: scaffold.Workspace{BaseDir: cfg.BaseDir},
		Log:       ledger.Log{Path: cfg.LogPath()},
		Catalog:   catalog,
		Editor:    editorLauncher(cfg.Editor),
		Logger:    logger,
	}

	result, err := s.Run(cmd.Context(), session.Input{
		Platform:   platforms[platformIdx],
		Language:   languages[languageIdx],
		URL:        url,
		Difficulty: difficulty,
		Tags:       prompt.ParseTags(tagsLine),
	})
	if err != nil {
		fmt.Println(prompt.ErrorMsg(fmt.Sprintf("Session failed: %v", err)))
		return err
	}

	fmt.Println()
	fmt.Println(prompt.Success(fmt.Sprintf("Scaffolded %s %s/%s",
		result.Record.Platform, result.Record.ContestID, result.Record.ProblemID)))
	fmt.Printf("  Solution: %s\n", result.Paths.Solution)
	fmt.Printf("  Question: %s\n", result.Paths.Link)
	fmt.Printf("  Notes:    %s\n", result.Paths.Thought)
	fmt.Printf("  Log:      %s\n", cfg.LogPath())

	if result.EditorWarning != nil {
		fmt.Println(prompt.Warning(fmt.Sprintf("Warning: %v", result.EditorWarning)))
	} else if cfg.Editor != "" {
		fmt.Printf("Editor opened in %s\n", result.SolutionsDir)
	}
	return nil
}

func editorLauncher(binary string) editor.Launcher {
	if binary == "" {
		return editor.Noop{}
	}
	return editor.NewCommandLauncher(binary)
}
