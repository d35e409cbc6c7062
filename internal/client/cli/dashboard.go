package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fittrack/internal/dto"
)

// Dashboard shows the logged-in user's id and the exercise log.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.current.LoggedIn() {
		return fmt.Errorf("not logged in, run login first")
	}

	fmt.Fprintf(a.out, "User id: %s\n\n", a.current.UserID)
	return a.ListExercises(ctx)
}

// ListExercises prints the exercise log.
func (a *App) ListExercises(ctx context.Context) error {
	exercises, err := a.api.Exercises(ctx)
	if err != nil {
		return err
	}

	if len(exercises) == 0 {
		fmt.Fprintln(a.out, "No exercises logged yet")
		return nil
	}

	for _, e := range exercises {
		fmt.Fprintf(a.out, "%s  %s  %s (%d min) by %s\n",
			e.ID.Hex(),
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Duration,
			e.Username)
	}
	return nil
}

// AddExercise is the exercise-entry form.
func (a *App) AddExercise(ctx context.Context) error {
	if !a.current.LoggedIn() {
		return fmt.Errorf("not logged in, run login first")
	}

	username, err := getText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	description, err := getText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	durationText, err := getText(a.reader, "Duration (minutes)", a.out)
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(durationText)
	if err != nil {
		return fmt.Errorf("duration must be a number: %w", err)
	}

	date, err := getText(a.reader, "Date (YYYY-MM-DD, empty for today)", a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	exercise, err := a.api.AddExercise(ctx, dto.ExerciseRequest{
		Username:    username,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exercise added, id %s\n", exercise.ID.Hex())
	return nil
}

// DeleteExercise removes an exercise by id.
func (a *App) DeleteExercise(ctx context.Context, id string) error {
	if !a.current.LoggedIn() {
		return fmt.Errorf("not logged in, run login first")
	}

	if err := a.api.DeleteExercise(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exercise deleted")
	return nil
}
