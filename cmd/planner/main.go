// Package main is the planner CLI: a thin client for the plann.er API.
// "planner new" walks the two-step trip wizard, "planner show" prints the
// active trip's itinerary, "planner activity" adds an itinerary entry.
// The active trip id is remembered in a local bbolt file between runs.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plannerapp/planner/internal/calendar"
	"github.com/plannerapp/planner/internal/client"
	"github.com/plannerapp/planner/internal/domain"
	"github.com/plannerapp/planner/internal/itinerary"
	"github.com/plannerapp/planner/internal/tripstore"
	"github.com/plannerapp/planner/internal/wizard"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "new":
		return cmdNew(args[1:])
	case "show":
		return cmdShow(args[1:])
	case "activity":
		return cmdActivity(args[1:])
	case "forget":
		return cmdForget(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: planner <command> [flags]

commands:
  new       create a trip (destination, dates, guest emails)
  show      print the active trip's itinerary
  activity  add an activity to the active trip
  forget    forget the active trip`)
}

// commonFlags registers the flags every command shares.
func commonFlags(fs *flag.FlagSet) (apiURL, statePath *string) {
	apiURL = fs.String("api", envOr("PLANNER_API", "http://localhost:8080"), "plann.er API base URL")
	statePath = fs.String("state", defaultStatePath(), "path of the local state file")
	return apiURL, statePath
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planner.db"
	}
	return filepath.Join(home, ".planner.db")
}

// cmdNew drives the trip-creation wizard from flags: the date flags act
// as the two calendar taps, the invite list feeds the guest roster, and
// the create call only fires after an explicit confirmation.
func cmdNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	apiURL, statePath := commonFlags(fs)
	destination := fs.String("destination", "", "where the trip goes")
	start := fs.String("start", "", "first day, 2006-01-02")
	end := fs.String("end", "", "last day, 2006-01-02")
	invites := fs.String("invite", "", "comma-separated guest emails")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := wizard.New()
	w.Destination = *destination
	for _, raw := range []string{*start, *end} {
		if raw == "" {
			continue
		}
		day, err := domain.ParseDay(raw)
		if err != nil {
			return err
		}
		w.SelectDay(day)
	}
	if err := w.Advance(); err != nil {
		return err
	}
	for _, email := range splitCSV(*invites) {
		if err := w.Guests.Add(email); err != nil {
			return fmt.Errorf("%s: %w", email, err)
		}
	}
	if err := w.Advance(); err != nil {
		return err
	}

	payload := w.Payload()
	fmt.Printf("Viagem para %s, %s, %d convidado(s)\n",
		payload.Destination, w.Dates.Label(), w.Guests.Len())
	if !*yes && !confirm("Confirmar viagem?") {
		fmt.Println("Cancelado.")
		return nil
	}

	if err := w.BeginSubmit(); err != nil {
		return err
	}
	defer w.FinishSubmit()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tripID, err := client.New(*apiURL).CreateTrip(ctx, client.CreateTripParams{
		Destination:    payload.Destination,
		StartsAt:       payload.StartsAt,
		EndsAt:         payload.EndsAt,
		EmailsToInvite: payload.EmailsToInvite,
	})
	if err != nil {
		return err
	}

	store, err := tripstore.Open(*statePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(tripID); err != nil {
		return err
	}

	fmt.Println("Viagem criada:", tripID)
	return nil
}

// cmdShow prints the active trip header and its day-sectioned itinerary.
func cmdShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	apiURL, statePath := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tripID, err := activeTripID(*statePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	api := client.New(*apiURL)
	trip, err := api.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	groups, err := api.Activities(ctx, tripID)
	if err != nil {
		return err
	}

	fmt.Println(calendar.FormatWhen(trip.Destination, trip.StartsAt, trip.EndsAt))
	fmt.Println()

	for _, section := range itinerary.Sections(groups, time.Now()) {
		fmt.Printf("Dia %d, %s\n", section.DayNumber(), section.DayName())
		if section.IsEmpty {
			fmt.Println("  nenhuma atividade cadastrada nessa data")
			continue
		}
		for _, entry := range section.Entries {
			marker := " "
			if entry.IsPast {
				marker = "✓"
			}
			fmt.Printf("  %s %s  %s\n", marker, entry.Hour, entry.Title)
		}
	}
	return nil
}

// cmdActivity adds one activity to the active trip.
func cmdActivity(args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	apiURL, statePath := commonFlags(fs)
	title := fs.String("title", "", "what the activity is")
	date := fs.String("date", "", "day of the activity, 2006-01-02")
	hour := fs.Int("hour", 0, "hour of the day, 0-23")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day, err := domain.ParseDay(*date)
	if err != nil {
		return err
	}
	tripID, err := activeTripID(*statePath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	occursAt := day.Time().Add(time.Duration(*hour) * time.Hour)
	id, err := client.New(*apiURL).CreateActivity(ctx, tripID, *title, occursAt)
	if err != nil {
		return err
	}
	fmt.Println("Atividade criada:", id)
	return nil
}

// cmdForget clears the locally remembered trip id.
func cmdForget(args []string) error {
	fs := flag.NewFlagSet("forget", flag.ExitOnError)
	_, statePath := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := tripstore.Open(*statePath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Clear()
}

// activeTripID loads the trip id saved by "planner new".
func activeTripID(statePath string) (uuid.UUID, error) {
	store, err := tripstore.Open(statePath)
	if err != nil {
		return uuid.UUID{}, err
	}
	defer store.Close()

	id, ok, err := store.Get()
	if err != nil {
		return uuid.UUID{}, err
	}
	if !ok {
		return uuid.UUID{}, fmt.Errorf("no active trip; run \"planner new\" first")
	}
	return id, nil
}

// confirm asks a yes/no question on stdin; only "s"/"sim"/"y"/"yes" accept.
func confirm(question string) bool {
	fmt.Printf("%s [s/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// splitCSV splits a comma-separated flag value, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
