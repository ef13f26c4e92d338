// Take SoundCloud with you offline.
//
// If you enjoy the work of the artists you listen to, please go support
// them in a way you feel is appropriate (e.g. purchase it).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Syntox32/Soundloader/src/features/config"
	"github.com/Syntox32/Soundloader/src/features/downloading"
	"github.com/Syntox32/Soundloader/src/features/logging"
	"github.com/Syntox32/Soundloader/src/features/resolving"
	"github.com/Syntox32/Soundloader/src/infra/soundcloud"
	"github.com/Syntox32/Soundloader/src/infra/tag"
)

type cliFlags struct {
	likes      bool
	username   string
	set        string
	track      string
	count      int
	folder     string
	create     bool
	overwrite  bool
	https      bool
	configPath string
}

func parseFlags() *cliFlags {
	var f cliFlags
	flag.BoolVar(&f.likes, "l", false, "download the likes of a user, requires -u")
	flag.BoolVar(&f.likes, "likes", false, "download the likes of a user, requires -u")
	flag.StringVar(&f.username, "u", "", "username to retrieve likes for")
	flag.StringVar(&f.username, "username", "", "username to retrieve likes for")
	flag.StringVar(&f.set, "s", "", "link to a set to download")
	flag.StringVar(&f.set, "set", "", "link to a set to download")
	flag.StringVar(&f.track, "t", "", "link to a track to download")
	flag.StringVar(&f.track, "track", "", "link to a track to download")
	flag.IntVar(&f.count, "c", 0, "how many tracks to download, all available if omitted")
	flag.IntVar(&f.count, "count", 0, "how many tracks to download, all available if omitted")
	flag.StringVar(&f.folder, "f", "", "where to save the track(s), current directory if omitted")
	flag.StringVar(&f.folder, "folder", "", "where to save the track(s), current directory if omitted")
	flag.BoolVar(&f.create, "x", false, "create the save folder if it does not exist")
	flag.BoolVar(&f.create, "create-directory", false, "create the save folder if it does not exist")
	flag.BoolVar(&f.overwrite, "o", false, "overwrite already existing songs")
	flag.BoolVar(&f.overwrite, "overwrite", false, "overwrite already existing songs")
	flag.BoolVar(&f.https, "https", false, "use HTTPS when querying the API, slower than plain HTTP")
	flag.StringVar(&f.configPath, "config", "config.yaml", "path to the config file (YAML)")
	flag.Parse()
	return &f
}

// applyFlags folds explicitly set flags over the loaded configuration.
// Config values survive for flags the user did not pass.
func applyFlags(m *config.Manager, f *cliFlags) {
	cfg := *m.Get()
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "f", "folder":
			cfg.SaveFolder = f.folder
		case "x", "create-directory":
			cfg.CreateFolder = f.create
		case "o", "overwrite":
			cfg.Overwrite = f.overwrite
		case "https":
			cfg.HTTPS = f.https
		}
	})
	m.Update(&cfg)
}

func main() {
	f := parseFlags()

	// Load configuration
	cfgManager, err := config.Load(f.configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	applyFlags(cfgManager, f)

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Configuration errors end the run before any network activity.
	if f.likes && f.username == "" {
		fmt.Fprintln(os.Stderr, "downloading likes requires a username (-u)")
		flag.Usage()
		os.Exit(1)
	}
	if err := cfgManager.EnsureSaveFolder(); err != nil {
		slog.Error("Invalid save folder", "error", err)
		os.Exit(1)
	}

	cfg := cfgManager.Get()
	client := soundcloud.NewClient(cfg.ClientID, cfg.HTTPS, nil)
	resolver := resolving.NewService(client, cfg.HTTPS)
	retriever := downloading.NewRetriever(client, cfgManager)
	service := downloading.NewService(cfgManager, resolver, retriever, tag.NewTagWriter())

	ctx := context.Background()

	// No arguments at all drops into the interactive prompt.
	if len(os.Args) == 1 {
		runInteractive(ctx, service)
		return
	}

	// When several modes are given at once: likes > set > track.
	var stats downloading.RunStatistics
	switch {
	case f.likes:
		slog.Info("Downloading likes", "username", f.username)
		stats, err = service.DownloadLikes(ctx, f.username, f.count)
	case f.set != "":
		slog.Info("Downloading set", "set", f.set)
		stats, err = service.DownloadSet(ctx, f.set, f.count)
	case f.track != "":
		slog.Info("Downloading track", "track", f.track)
		stats, err = service.DownloadTrack(ctx, f.track)
	default:
		fmt.Fprintln(os.Stderr, "well, you have to type in something!")
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
	report(stats)
}

func runInteractive(ctx context.Context, service *downloading.Service) {
	fmt.Println("Input a link to the track you wish to download:")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		slog.Error("Failed to read input", "error", err)
		os.Exit(1)
	}
	reference := strings.TrimSpace(line)
	if reference == "" {
		fmt.Fprintln(os.Stderr, "well, you have to type in something!")
		os.Exit(1)
	}
	stats, err := service.DownloadTrack(ctx, reference)
	if err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
	report(stats)
}

func report(stats downloading.RunStatistics) {
	if stats.Failed() != 0 {
		slog.Warn("Finished with errors",
			"failed", stats.Failed(),
			"ofWhichNoStream", stats.FailedNoStream,
		)
	}
	slog.Info("Done!", "attempted", stats.Attempted, "succeeded", stats.Succeeded)
}
