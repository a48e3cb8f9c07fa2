// Command seed loads the labeled skill dataset (and optionally a course
// catalog) into PostgreSQL.
//
// The dataset CSV has a header row: a role column followed by one column per
// catalog skill, cells holding textual proficiency labels:
//
//	Role,Database Fundamentals,Computer Architecture,...
//	Database Administrator,Excellent,Average,...
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
	"careerpath/pkg/config"
	"careerpath/pkg/courses"
	"careerpath/pkg/logger"
	pgrepo "careerpath/pkg/repository/postgres"
	"careerpath/pkg/storage/postgres"
)

func main() {
	datasetPath := flag.String("dataset", "", "path to the skill dataset CSV")
	coursesPath := flag.String("courses", "", "optional path to a course catalog JSON")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if *datasetPath == "" && *coursesPath == "" {
		log.Fatal().Msg("nothing to do: pass -dataset and/or -courses")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	cat := catalog.Default()

	if *datasetPath != "" {
		observations, err := loadDataset(*datasetPath, cat)
		if err != nil {
			log.Fatal().Err(err).Str("path", *datasetPath).Msg("load dataset")
		}
		repo, err := pgrepo.NewObservationRepository(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("init observation repo")
		}
		if err := repo.ReplaceAll(ctx, observations); err != nil {
			log.Fatal().Err(err).Msg("store dataset")
		}
		log.Info().Int("observations", len(observations)).Msg("dataset loaded")
	}

	if *coursesPath != "" {
		list, err := loadCourses(*coursesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *coursesPath).Msg("load courses")
		}
		repo, err := pgrepo.NewCourseRepository(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("init course repo")
		}
		for _, course := range list {
			if err := repo.Create(ctx, course); err != nil {
				log.Fatal().Err(err).Str("title", course.Title).Msg("store course")
			}
		}
		log.Info().Int("courses", len(list)).Msg("courses loaded")
	}
}

// loadDataset parses the CSV into observations. Any malformed cell fails the
// whole load; a partially imported dataset would skew every profile built
// from it.
func loadDataset(path string, cat *catalog.Catalog) ([]career.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header needs a role column and at least one skill", career.ErrMalformedInput)
	}
	skillNames := make([]string, len(header)-1)
	for i, col := range header[1:] {
		idx, ok := cat.Index(col)
		if !ok {
			return nil, fmt.Errorf("%w: unknown skill column %q", career.ErrMalformedInput, col)
		}
		skillNames[i] = cat.Skills()[idx].Name
	}

	var out []career.Observation
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++
		role := strings.TrimSpace(record[0])
		if role == "" {
			return nil, fmt.Errorf("%w: line %d has an empty role", career.ErrMalformedInput, line)
		}
		for i, cell := range record[1:] {
			rank, ok := cat.ParseLevel(cell)
			if !ok {
				return nil, fmt.Errorf("%w: line %d has unknown label %q for %q", career.ErrMalformedInput, line, cell, skillNames[i])
			}
			out = append(out, career.Observation{Role: role, Skill: skillNames[i], Level: rank})
		}
	}
	return out, nil
}

type courseSeed struct {
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
	URL         string `json:"url"`
	TargetRole  string `json:"targetRole"`
}

func loadCourses(path string) ([]courses.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seeds []courseSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]courses.Course, 0, len(seeds))
	for i, s := range seeds {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.TargetRole) == "" {
			return nil, fmt.Errorf("course %d: title and targetRole are required", i)
		}
		out = append(out, courses.Course{
			ID:          uuid.New(),
			Title:       s.Title,
			Provider:    s.Provider,
			Description: s.Description,
			URL:         s.URL,
			TargetRole:  s.TargetRole,
			CreatedAt:   now,
		})
	}
	return out, nil
}
