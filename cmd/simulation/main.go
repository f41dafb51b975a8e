package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"geotagger-be/internal/config"
	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/logger"
	"geotagger-be/internal/repository/memory"
	"geotagger-be/internal/service"
	"geotagger-be/pkg/geo"
	"geotagger-be/pkg/satellite"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

// A field walk around central Paris: three clusters of fixes, each cluster
// tight enough to share a folder, far enough apart to mint separate ones.
var walk = []struct {
	label    string
	lat, lon float64
}{
	{"Louvre courtyard", 48.86110, 2.33580},
	{"Louvre courtyard, 20m on", 48.86128, 2.33585},
	{"Tuileries gate", 48.86350, 2.32700},
	{"Tuileries gate, revisit", 48.86352, 2.32705},
	{"Pont Neuf", 48.85660, 2.34120},
}

func main() {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Println("=== GeoTagger Field Walk Simulation ===")

	ctx := context.Background()
	cfg := config.Load()

	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	sysLogger := logger.NewIsolatedLogger("logs/simulation.log")

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	busService := service.NewBusService(pubSub)

	geocodingService := service.NewGeocodingService("", sysLogger)
	folderService := service.NewFolderService(uowFactory, geocodingService, busService, nil, nil, cfg.App.ProximityMeters, sysLogger)
	noteService := service.NewNoteService(uowFactory, folderService)
	missionService := service.NewMissionService(uowFactory, busService, nil, sysLogger)

	// 1. Walk the route, dropping a note at every fix.
	fmt.Println("\n--- Walking the route ---")
	for _, stop := range walk {
		res, err := noteService.Create(ctx, &dto.CreateNoteRequest{
			Text:      fmt.Sprintf("Observation at %s", stop.label),
			Latitude:  stop.lat,
			Longitude: stop.lon,
		})
		if err != nil {
			log.Fatalf("note creation failed: %v", err)
		}
		if res.FolderCreated {
			fmt.Printf("%s %s -> new folder %s\n", green("[NEW]"), stop.label, res.FolderId)
		} else {
			fmt.Printf("%s %s -> existing folder %s\n", cyan("[HIT]"), stop.label, res.FolderId)
		}
	}

	folders, err := folderService.GetAll(ctx)
	if err != nil {
		log.Fatalf("listing folders failed: %v", err)
	}
	fmt.Printf("\n%d folders after the walk (expected 3)\n", len(folders))

	// 2. Seed a mission from the visited folders and re-walk to complete it.
	fmt.Println("\n--- Mission run ---")
	mission, err := missionService.Active(ctx)
	if err != nil || mission == nil {
		log.Fatalf("mission seeding failed: %v", err)
	}
	fmt.Printf("Mission %q with %d objectives, reward %d\n", mission.Title, len(mission.Objectives), mission.Reward)

	for _, stop := range walk {
		progress, err := missionService.Progress(ctx, &dto.ProgressRequest{
			Latitude:  stop.lat,
			Longitude: stop.lon,
		})
		if err != nil {
			log.Fatalf("progress failed: %v", err)
		}
		for _, c := range progress.Completions {
			fmt.Printf("%s %s (%.1f m)\n", green("[DONE]"), c.Description, c.DistanceMeters)
		}
		if progress.MissionCompleted {
			fmt.Printf("%s mission complete at %s\n", yellow("[WIN]"), stop.label)
			break
		}
	}

	// 3. Sample a synthetic raster at the first stop.
	fmt.Println("\n--- Satellite sample ---")
	anchor := geo.Coordinate{Latitude: walk[0].lat, Longitude: walk[0].lon, Timestamp: time.Now()}
	grid := satellite.Generate(anchor, satellite.Vegetation, satellite.DefaultGridSize)
	min, max := grid.MinMax()
	fmt.Printf("NDVI %dx%d grid: min=%.3f max=%.3f mean=%.3f\n",
		len(grid.Values), len(grid.Values), min, max, grid.Mean())

	heatmap := satellite.Rasterize(grid, satellite.SchemeVegetation)
	png, err := heatmap.EncodePNG()
	if err != nil {
		fmt.Printf("%s heatmap encoding failed: %v\n", red("[ERR]"), err)
		return
	}
	fmt.Printf("Heatmap raster: %dx%d px, %d byte PNG\n",
		heatmap.Image.Bounds().Dx(), heatmap.Image.Bounds().Dy(), len(png))
}
