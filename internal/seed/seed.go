// Package seed populates a development database with sample data.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"coursepulse/internal/app/models"
	"coursepulse/internal/app/repositories"
	"coursepulse/internal/db"
	"coursepulse/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// CreateSampleData inserts a handful of courses and reviews so the read
// endpoints and the chat flow have something to work with in development.
// Existing courses are left untouched, so repeated startups are safe.
func CreateSampleData(ctx context.Context, database *db.PostgresDB, logger zerolog.Logger) error {
	repos := repositories.NewRepositories(database)

	courses := []struct {
		course  models.Course
		reviews []string
	}{
		{
			course: models.Course{
				Code:        "CS101",
				Name:        "Introduction to Computer Science",
				Description: strPtr("Fundamentals of programming and computational thinking."),
				ECTS:        intPtr(6),
				Professor:   strPtr("A. Demir"),
			},
			reviews: []string{
				"Great introduction, the weekly labs really helped the material stick.",
				"Heavy workload towards the end of the semester, start the projects early.",
				"Lectures were clear but the exams were harder than the homework suggested.",
			},
		},
		{
			course: models.Course{
				Code:        "MATH201",
				Name:        "Linear Algebra",
				Description: strPtr("Vector spaces, linear maps, eigenvalues and applications."),
				ECTS:        intPtr(5),
				Professor:   strPtr("E. Kaya"),
			},
			reviews: []string{
				"Proof-heavy course, attend the problem sessions.",
				"The professor explains intuition before formalism, which I appreciated.",
			},
		},
		{
			course: models.Course{
				Code: "PHYS110",
				Name: "Classical Mechanics",
				ECTS: intPtr(7),
			},
			reviews: nil,
		},
	}

	seeded := 0
	for _, entry := range courses {
		existing, err := repos.CourseRepository.GetCourseByCode(ctx, entry.course.Code)
		if err != nil && !errors.Is(err, apperrors.ErrCourseNotFound) {
			return fmt.Errorf("checking course %s: %w", entry.course.Code, err)
		}
		if existing != nil {
			continue
		}

		course := entry.course
		courseID, err := repos.CourseRepository.CreateCourse(ctx, &course)
		if err != nil {
			return fmt.Errorf("seeding course %s: %w", course.Code, err)
		}

		for _, content := range entry.reviews {
			post := &models.Post{CourseID: courseID, Content: content}
			if _, err := repos.PostRepository.CreatePost(ctx, post); err != nil {
				return fmt.Errorf("seeding post for %s: %w", course.Code, err)
			}
		}
		seeded++
	}

	if seeded > 0 {
		logger.Info().Int("courses", seeded).Msg("Sample data created")
	}
	return nil
}
