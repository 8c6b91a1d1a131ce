// Package cli holds the non-interactive cobra commands.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/filter"
	"github.com/ngmaloney/charter-terminal/internal/grouping"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

// LoaderFunc builds the loader a command reads from
type LoaderFunc func() *catalog.Loader

// Now is the clock used for the past-date cutoff
var Now = time.Now

// TripsCmd returns the trips command
func TripsCmd(newLoader LoaderFunc) *cobra.Command {
	var criteria models.FilterCriteria
	var statuses []string

	cmd := &cobra.Command{
		Use:   "trips",
		Short: "List upcoming trips grouped by date",
		Long: `Fetch the catalog and print upcoming trips grouped by date.

Statuses: available, full, closed, unspecified, or "any" for no restriction.

Examples:
  charter-terminal trips
  charter-terminal trips --from 2026/3/1 --to 2026/3/31 --category ジギング
  charter-terminal trips --port 三崎港 --status available`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseStatuses(statuses)
			if err != nil {
				return err
			}
			criteria.Statuses = parsed

			snap, err := newLoader().Load(cmd.Context())
			if err != nil {
				return err
			}

			now := Now()
			listings := filter.Apply(snap.Listings, snap.Boats, criteria, now)
			groups := grouping.GroupAndSortIn(listings, snap.Boats, now.Location())
			displayTrips(cmd.OutOrStdout(), groups, models.IndexBoats(snap.Boats))
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.DateFrom, "from", "", "earliest date (inclusive)")
	cmd.Flags().StringVar(&criteria.DateTo, "to", "", "latest date (inclusive)")
	cmd.Flags().StringVar(&criteria.Category, "category", "", "category tag, e.g. ジギング")
	cmd.Flags().StringVar(&criteria.Port, "port", "", "departure port (exact)")
	cmd.Flags().StringVar(&criteria.Area, "area", "", "address substring, e.g. 神奈川県")
	cmd.Flags().StringSliceVar(&statuses, "status", []string{"available", "full"}, "statuses to include")

	return cmd
}

// BoatsCmd returns the boats command
func BoatsCmd(newLoader LoaderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "boats",
		Short: "List every boat in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := newLoader().Load(cmd.Context())
			if err != nil {
				return err
			}
			displayBoats(cmd.OutOrStdout(), snap.Boats)
			return nil
		},
	}
}

// parseStatuses validates --status values; "any" clears the set
func parseStatuses(raw []string) ([]models.Status, error) {
	var out []models.Status
	for _, v := range raw {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "any" {
			return nil, nil
		}
		s, ok := knownStatus(v)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", v)
		}
		out = append(out, s)
	}
	return out, nil
}

func knownStatus(v string) (models.Status, bool) {
	for _, s := range models.AllStatuses() {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

func displayTrips(w io.Writer, groups []models.DateGroup, boats models.BoatIndex) {
	count := models.CountListings(groups)
	if count == 0 {
		fmt.Fprintln(w, "条件に一致するプランがありません")
		return
	}
	fmt.Fprintf(w, "%d件のプランが見つかりました\n", count)

	memo := derive.NewMemo()
	for _, g := range groups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, dateColor(g).Sprint(g.DisplayLabel))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, l := range g.Listings {
			port, location := "", ""
			if boat := boats.Lookup(l.Shipname); boat != nil {
				port = boat.DeparturePort
				location = memo.ExtractLocation(boat.Address)
			}
			seats := ""
			if l.ShowsCapacity() {
				seats = fmt.Sprintf("残り%d名", l.Capacity)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				statusColor(l.Status).Sprint(l.Status.Label()),
				l.Shipname,
				l.Category,
				port,
				location,
				seats,
			)
		}
		tw.Flush()
	}
}

func displayBoats(w io.Writer, boats []models.Boat) {
	fmt.Fprintf(w, "%d隻の遊漁船\n\n", len(boats))

	memo := derive.NewMemo()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPORT\tAREA\tPHONE\tCALENDAR\tURL")
	for i := range boats {
		b := &boats[i]
		calendar := color.New(color.FgHiBlack).Sprint("未連携")
		if b.CalendarActive() {
			calendar = color.New(color.FgGreen).Sprint("連携中")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Shipname,
			b.DeparturePort,
			memo.ExtractLocation(b.Address),
			b.PhoneNumber,
			calendar,
			b.URL,
		)
	}
	tw.Flush()
}

func statusColor(s models.Status) *color.Color {
	switch s {
	case models.StatusAvailable:
		return color.New(color.FgGreen, color.Bold)
	case models.StatusFull:
		return color.New(color.FgYellow)
	case models.StatusClosed:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiBlack)
	}
}

func dateColor(g models.DateGroup) *color.Color {
	switch {
	case g.IsSunday:
		return color.New(color.FgRed, color.Bold)
	case g.IsWeekend:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}
