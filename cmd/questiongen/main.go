// Command questiongen generates AI prompting questions for courses and
// stores them in the ai_questions table. It is meant to be run offline,
// typically on a schedule, not as part of the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	appRepos "coursepulse/internal/app/repositories"
	appServices "coursepulse/internal/app/services"
	"coursepulse/internal/bootstrap"
	"coursepulse/internal/pkg/ai"
	"coursepulse/internal/pkg/prompt"
)

func main() {
	var (
		courseCode   = flag.String("course", "", "generate for a single course code (default: all courses)")
		numQuestions = flag.Int("n", 10, "number of questions to generate per course")
		timeout      = flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	)
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.OpenAI.APIKey == "" {
		lgr.Error().Msg("OPENAI_API_KEY is required for question generation")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	repos := appRepos.NewRepositories(database)
	templates := prompt.NewLoader(cfg.Prompts.Dir)
	completer := ai.NewOpenAIClient(ai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: float32(cfg.OpenAI.Temperature),
	})

	svc := appServices.NewQuestionService(
		repos.CourseRepository,
		repos.PostRepository,
		repos.AIQuestionRepository,
		templates,
		completer,
		lgr,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	inserted, err := svc.GenerateQuestions(ctx, *courseCode, *numQuestions)
	if err != nil {
		lgr.Error().Err(err).Msg("Question generation failed")
		os.Exit(1)
	}

	lgr.Info().Int("inserted", inserted).Msg("Question generation finished")
}
