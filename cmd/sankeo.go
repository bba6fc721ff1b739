package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/agency"
	"github.com/sankeo-tools/gtfs/agency/sankeo"
	"github.com/sankeo-tools/gtfs/config"
	"github.com/sankeo-tools/gtfs/importer"
	"github.com/urfave/cli/v2"
)

func main() {
	// The profile flag can come from a .env file; ignore if missing.
	_ = godotenv.Load()

	feedCommand := func(name, usage string, show func(feed *importer.Feed)) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: "path",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "warnings",
					Aliases: []string{"w"},
					Usage:   "also print the problems found while importing the feed",
				},
			},
			Action: func(ctx *cli.Context) error {
				feed, err := importFeed(ctx)
				if err != nil {
					return err
				}
				show(feed)
				if ctx.Bool("warnings") {
					printWarnings(feed)
				} else if len(feed.Warnings) > 0 {
					fmt.Printf("%d warnings (show with -w)\n", len(feed.Warnings))
				}
				return nil
			},
		}
	}

	app := &cli.App{
		Name:  "sankeo",
		Usage: "inspect the Sankéo GTFS static feed through the agency tools",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "YAML file overlaid on the built-in Sankéo profile",
				EnvVars: []string{"SANKEO_PROFILE"},
			},
		},
		Commands: []*cli.Command{
			feedCommand("routes", "list the routes of a feed with their numeric IDs", printRoutes),
			feedCommand("stops", "list the boardable stops of a feed with their numeric IDs", printStops),
			feedCommand("trips", "list the trips of a feed with their cleaned headsigns", printTrips),
			{
				Name:      "route-id",
				Usage:     "resolve route short names to numeric route IDs",
				ArgsUsage: "short_name...",
				Action: func(ctx *cli.Context) error {
					if ctx.Args().Len() == 0 {
						return fmt.Errorf("no route short name was provided")
					}
					tools, err := newTools(ctx)
					if err != nil {
						return err
					}
					tc := color.New(color.FgCyan)
					ec := color.New(color.FgRed)
					for _, shortName := range ctx.Args().Slice() {
						id, err := tools.RouteID(&gtfs.Route{ShortName: shortName})
						if err != nil {
							fmt.Printf("%-16s %s\n", shortName, ec.Sprint(err))
							continue
						}
						school := ""
						if tools.IsSchoolRoute(id) {
							school = " (school)"
						}
						fmt.Printf("%-16s %s%s\n", shortName, tc.Sprint(id), school)
					}
					return nil
				},
			},
			{
				Name:      "clean",
				Usage:     "clean labels the way the importer does",
				ArgsUsage: "label...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "kind",
						Value: "headsign",
						Usage: "kind of label: headsign, stop, route",
					},
				},
				Action: func(ctx *cli.Context) error {
					tools, err := newTools(ctx)
					if err != nil {
						return err
					}
					var clean func(string) string
					switch ctx.String("kind") {
					case "headsign":
						clean = tools.CleanTripHeadsign
					case "stop":
						clean = tools.CleanStopName
					case "route":
						clean = tools.CleanRouteLongName
					default:
						return fmt.Errorf("unknown label kind %q", ctx.String("kind"))
					}
					vc := color.New(color.FgMagenta)
					for _, label := range ctx.Args().Slice() {
						fmt.Printf("%q -> %s\n", label, vc.Sprint(clean(label)))
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func newTools(ctx *cli.Context) (agency.Tools, error) {
	profile := sankeo.Profile()
	if path := ctx.String("profile"); path != "" {
		var err error
		profile, err = config.Load(path, profile)
		if err != nil {
			return nil, err
		}
	}
	return sankeo.New(profile, sankeo.ToolsOpts{})
}

func importFeed(ctx *cli.Context) (*importer.Feed, error) {
	if ctx.Args().Len() == 0 {
		return nil, fmt.Errorf("a path to the GTFS static feed was not provided")
	}
	path := ctx.Args().First()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse GTFS static data: %w", err)
	}
	tools, err := newTools(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Import(static, tools)
}

func printRoutes(feed *importer.Feed) {
	tc := color.New(color.FgCyan)
	fmt.Printf("%d routes:\n", len(feed.Routes))
	for _, route := range feed.Routes {
		fmt.Printf("- RouteID %s  ShortName %s  Color %s  LongName %s  GTFS %s\n",
			tc.Sprint(route.ID),
			tc.Sprint(route.ShortName),
			tc.Sprint(route.Color),
			route.LongName,
			strings.Join(route.GTFSIDs, ","),
		)
	}
}

func printStops(feed *importer.Feed) {
	sc := color.New(color.FgGreen)
	fmt.Printf("%d stops:\n", len(feed.Stops))
	for _, stop := range feed.Stops {
		fmt.Printf("- StopID %s  GTFS %s  Name %s\n",
			sc.Sprint(stop.ID),
			stop.GTFSID,
			sc.Sprint(stop.Name),
		)
	}
}

func printTrips(feed *importer.Feed) {
	tc := color.New(color.FgCyan)
	vc := color.New(color.FgMagenta)
	fmt.Printf("%d trips:\n", len(feed.Trips))
	for _, trip := range feed.Trips {
		fmt.Printf("- TripID %s  RouteID %s  DirectionID %s  Headsign %s\n",
			tc.Sprint(trip.GTFSID),
			tc.Sprint(trip.RouteID),
			tc.Sprint(trip.DirectionID),
			vc.Sprint(trip.Headsign),
		)
	}
}

func printWarnings(feed *importer.Feed) {
	wc := color.New(color.FgYellow)
	fmt.Printf("%d warnings:\n", len(feed.Warnings))
	for _, warning := range feed.Warnings {
		fmt.Printf("- %s: %s\n", warning.File(), wc.Sprint(warning.Error()))
	}
}
